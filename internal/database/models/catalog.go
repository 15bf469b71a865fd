package models

// Region is one of the UIA regional sections
type Region struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Code        string `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// SDG is a UN Sustainable Development Goal. ID equals Number.
type SDG struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Number      int    `json:"number" gorm:"not null;uniqueIndex"`
	Name        string `json:"name" gorm:"size:200;not null"`
	ShortName   string `json:"short_name" gorm:"size:50;not null"`
	ColorHex    string `json:"color_hex" gorm:"size:7;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for SDG
func (SDG) TableName() string {
	return "sdgs"
}

// Typology is a project type tag
type Typology struct {
	Code         string `json:"code" gorm:"primaryKey;size:50"`
	Name         string `json:"name" gorm:"size:100;not null"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
}

// Requirement is a success requirement tag
type Requirement struct {
	Code         string              `json:"code" gorm:"primaryKey;size:50"`
	Name         string              `json:"name" gorm:"size:200;not null"`
	Category     RequirementCategory `json:"category" gorm:"type:varchar(32);not null;index"`
	DisplayOrder int                 `json:"display_order" gorm:"not null;default:0"`
}
