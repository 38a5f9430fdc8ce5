package entity

import "time"

// Patient is a clinical record. Identifiers are short prefixed strings
// ("p_a1b2c3d") assigned at creation and immutable afterwards. Optional
// attributes are pointers so that absent and empty stay distinguishable.
type Patient struct {
	ID          string    `gorm:"type:varchar(32);primaryKey"`
	FirstName   string    `gorm:"type:varchar(255);not null"`
	LastName    string    `gorm:"type:varchar(255);not null;index"`
	DateOfBirth *string   `gorm:"type:varchar(10)"`
	Sex         *string   `gorm:"type:varchar(16)"`
	Phone       *string   `gorm:"type:varchar(32)"`
	Email       *string   `gorm:"type:varchar(255)"`
	Allergies   *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Patient) TableName() string {
	return "patients"
}

// DisplayName is the denormalized name surgeries and stats expose.
func (p *Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
