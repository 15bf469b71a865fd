package catalog

import "atlas-backend/internal/database/models"

// Regions are the five UIA regional sections
var Regions = []models.Region{
	{ID: 1, Code: "SECTION_I", Name: "Section I - Western Europe", Description: "Western European countries"},
	{ID: 2, Code: "SECTION_II", Name: "Section II - Middle East and Eastern Europe", Description: "Middle East and Eastern European countries"},
	{ID: 3, Code: "SECTION_III", Name: "Section III - Americas", Description: "North, Central and South American countries"},
	{ID: 4, Code: "SECTION_IV", Name: "Section IV - Oceania", Description: "Oceanic countries and territories"},
	{ID: 5, Code: "SECTION_V", Name: "Section V - Africa", Description: "African countries"},
}

// SDGs are the seventeen UN Sustainable Development Goals with their official colors
var SDGs = []models.SDG{
	{ID: 1, Number: 1, Name: "No Poverty", ShortName: "No Poverty", ColorHex: "#E5243B", Description: "End poverty in all its forms everywhere"},
	{ID: 2, Number: 2, Name: "Zero Hunger", ShortName: "Zero Hunger", ColorHex: "#DDA63A", Description: "End hunger, achieve food security and improved nutrition"},
	{ID: 3, Number: 3, Name: "Good Health and Well-being", ShortName: "Good Health", ColorHex: "#4C9F38", Description: "Ensure healthy lives and promote well-being for all"},
	{ID: 4, Number: 4, Name: "Quality Education", ShortName: "Quality Education", ColorHex: "#C5192D", Description: "Ensure inclusive and equitable quality education"},
	{ID: 5, Number: 5, Name: "Gender Equality", ShortName: "Gender Equality", ColorHex: "#FF3A21", Description: "Achieve gender equality and empower all women and girls"},
	{ID: 6, Number: 6, Name: "Clean Water and Sanitation", ShortName: "Clean Water", ColorHex: "#26BDE2", Description: "Ensure availability and sustainable management of water"},
	{ID: 7, Number: 7, Name: "Affordable and Clean Energy", ShortName: "Clean Energy", ColorHex: "#FCC30B", Description: "Ensure access to affordable, reliable, sustainable energy"},
	{ID: 8, Number: 8, Name: "Decent Work and Economic Growth", ShortName: "Decent Work", ColorHex: "#A21942", Description: "Promote sustained, inclusive economic growth"},
	{ID: 9, Number: 9, Name: "Industry, Innovation and Infrastructure", ShortName: "Innovation", ColorHex: "#FD6925", Description: "Build resilient infrastructure, promote innovation"},
	{ID: 10, Number: 10, Name: "Reduced Inequalities", ShortName: "Reduced Inequalities", ColorHex: "#DD1367", Description: "Reduce inequality within and among countries"},
	{ID: 11, Number: 11, Name: "Sustainable Cities and Communities", ShortName: "Sustainable Cities", ColorHex: "#FD9D24", Description: "Make cities and human settlements sustainable"},
	{ID: 12, Number: 12, Name: "Responsible Consumption and Production", ShortName: "Responsible Consumption", ColorHex: "#BF8B2E", Description: "Ensure sustainable consumption and production patterns"},
	{ID: 13, Number: 13, Name: "Climate Action", ShortName: "Climate Action", ColorHex: "#3F7E44", Description: "Take urgent action to combat climate change"},
	{ID: 14, Number: 14, Name: "Life Below Water", ShortName: "Life Below Water", ColorHex: "#0A97D9", Description: "Conserve and sustainably use the oceans, seas"},
	{ID: 15, Number: 15, Name: "Life on Land", ShortName: "Life on Land", ColorHex: "#56C02B", Description: "Protect, restore and promote sustainable use of ecosystems"},
	{ID: 16, Number: 16, Name: "Peace, Justice and Strong Institutions", ShortName: "Peace & Justice", ColorHex: "#00689D", Description: "Promote peaceful and inclusive societies"},
	{ID: 17, Number: 17, Name: "Partnerships for the Goals", ShortName: "Partnerships", ColorHex: "#19486A", Description: "Strengthen means of implementation and partnerships"},
}

// Typologies are the project type tags
var Typologies = []models.Typology{
	{Code: "RESIDENTIAL", Name: "Residential", DisplayOrder: 1},
	{Code: "COMMERCIAL_MIXED", Name: "Commercial & Mixed-Use", DisplayOrder: 2},
	{Code: "HOSPITALITY_TOURISM", Name: "Hospitality & Tourism", DisplayOrder: 3},
	{Code: "EDUCATIONAL", Name: "Educational", DisplayOrder: 4},
	{Code: "HEALTHCARE", Name: "Healthcare", DisplayOrder: 5},
	{Code: "CIVIC_GOVERNMENT", Name: "Civic & Government", DisplayOrder: 6},
	{Code: "CULTURAL_HERITAGE", Name: "Cultural & Heritage", DisplayOrder: 7},
	{Code: "SPORTS_RECREATION", Name: "Sports & Recreation", DisplayOrder: 8},
	{Code: "INDUSTRIAL_LOGISTICS", Name: "Industrial & Logistics", DisplayOrder: 9},
	{Code: "INFRASTRUCTURE_UTILITIES", Name: "Infrastructure & Utilities", DisplayOrder: 10},
	{Code: "PUBLIC_REALM_URBAN", Name: "Public Realm & Urban Landscape", DisplayOrder: 11},
	{Code: "NATURAL_ENVIRONMENT", Name: "Natural Environment & Ecological Projects", DisplayOrder: 12},
	{Code: "TRADITIONAL_MARKETS", Name: "Traditional Markets & Bazaars", DisplayOrder: 13},
	{Code: "OTHER", Name: "Other", DisplayOrder: 14},
}

// Requirements are the success requirement tags, grouped by category
var Requirements = []models.Requirement{
	{Code: "FUNDING_PRIVATE_INVESTMENT", Name: "Private Investment / Corporate Sponsorship", Category: models.RequirementCategoryFunding, DisplayOrder: 1},
	{Code: "FUNDING_PUBLIC_GRANTS", Name: "Public Funding / Government Grants", Category: models.RequirementCategoryFunding, DisplayOrder: 2},
	{Code: "FUNDING_INTERNATIONAL_AID", Name: "International Aid / Development Grants", Category: models.RequirementCategoryFunding, DisplayOrder: 3},
	{Code: "FUNDING_COMMUNITY_CROWDFUNDING", Name: "Community Funding / Crowdfunding", Category: models.RequirementCategoryFunding, DisplayOrder: 4},
	{Code: "FUNDING_PHILANTHROPIC", Name: "Philanthropic Support", Category: models.RequirementCategoryFunding, DisplayOrder: 5},
	{Code: "GOV_NATIONAL_SUPPORT", Name: "National Government Support & Political Will", Category: models.RequirementCategoryGovernment, DisplayOrder: 6},
	{Code: "GOV_REGIONAL_SUPPORT", Name: "Regional / Gubernatorial Support", Category: models.RequirementCategoryGovernment, DisplayOrder: 7},
	{Code: "GOV_LOCAL_SUPPORT", Name: "Local / Municipal Support & Endorsement", Category: models.RequirementCategoryGovernment, DisplayOrder: 8},
	{Code: "GOV_FAVORABLE_POLICIES", Name: "Favorable Policies or Regulations", Category: models.RequirementCategoryGovernment, DisplayOrder: 9},
	{Code: "GOV_STREAMLINED_PERMITS", Name: "Streamlined Permitting & Approval Process", Category: models.RequirementCategoryGovernment, DisplayOrder: 10},
	{Code: "OTHER_STRONG_LEADERSHIP", Name: "Strong Project Leadership & Management", Category: models.RequirementCategoryOther, DisplayOrder: 11},
	{Code: "OTHER_MEDIA_COVERAGE", Name: "Media Coverage & Public Awareness", Category: models.RequirementCategoryOther, DisplayOrder: 12},
	{Code: "OTHER_LAND_AVAILABILITY", Name: "Availability of Land / Site", Category: models.RequirementCategoryOther, DisplayOrder: 13},
	{Code: "OTHER_CUSTOM", Name: "Other", Category: models.RequirementCategoryOther, DisplayOrder: 14},
}

// OtherTypologyCode and OtherRequirementCode accept a free-text description
const (
	OtherTypologyCode    = "OTHER"
	OtherRequirementCode = "OTHER_CUSTOM"
)
