package testutils

import (
	"fmt"
	"sync/atomic"

	"atlas-backend/internal/database/models"

	"github.com/google/uuid"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates an unsaved test Project with default values. Region 5 and
// SDG 7 come from the seeded catalog.
func (f *ProjectFactory) Create() *models.Project {
	n := nextSeq()
	return &models.Project{
		Name:                 fmt.Sprintf("Solar Microgrid %d", n),
		OrganizationName:     "Green Energy Trust",
		ContactPerson:        "Ama Mensah",
		ContactEmail:         fmt.Sprintf("contact%d@example.org", n),
		ImplementationStatus: models.ImplementationStatusPlanned,
		City:                 "Accra",
		Country:              "Ghana",
		RegionID:             5,
		FundingNeeded:        250000,
		BriefDescription:     "Community solar for public buildings",
		DetailedDescription:  "Installs rooftop solar on schools and clinics in the metropolitan area.",
		SDGs:                 []models.ProjectSDG{{SDGID: 7}},
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	p := f.Create()
	p.Name = name
	return p
}

// WithSDGs replaces the SDG list of the project
func (f *ProjectFactory) WithSDGs(ids ...int) *models.Project {
	p := f.Create()
	p.SDGs = make([]models.ProjectSDG, 0, len(ids))
	for _, id := range ids {
		p.SDGs = append(p.SDGs, models.ProjectSDG{SDGID: id})
	}
	return p
}

// WithLocation sets city and coordinates
func (f *ProjectFactory) WithLocation(city string, lat, lon float64) *models.Project {
	p := f.Create()
	p.City = city
	p.Latitude = &lat
	p.Longitude = &lon
	return p
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an unsaved submitter with a unique email
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     fmt.Sprintf("user%d@example.org", n),
		FullName:  "Kwame Boateng",
		Role:      models.UserRoleSubmitter,
		IsActive:  true,
	}
}

// WithRole creates a user with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project *ProjectFactory
	User    *UserFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project: NewProjectFactory(),
		User:    NewUserFactory(),
	}
}
