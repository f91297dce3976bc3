package models

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusConverted LeadStatus = "converted"
)

type Lead struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `gorm:"not null;index" json:"email"`
	Phone      string     `json:"phone"`
	Company    string     `json:"company"`
	Status     LeadStatus `gorm:"type:VARCHAR(20);default:'new';index" json:"status"`
	Notes      string     `json:"notes"`
	AssignedTo *string    `gorm:"index" json:"assigned_to"`
	Assignee   *User      `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
