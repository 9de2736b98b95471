package models

import "time"

type UserProfile struct {
	PersonalCode    string `gorm:"size:32;primaryKey"`
	KnownAs         string `gorm:"size:64"`
	Surname         string `gorm:"size:128"`
	FullName        string `gorm:"size:256"`
	PostNominals    string `gorm:"size:32"`
	Email           string `gorm:"size:320"`
	ObjectID        string `gorm:"size:64"`
	Initials        string `gorm:"size:16"`
	LastWorkingDate *time.Time
	ActiveFlag      bool `gorm:"not null;default:true"`
	// Populated by the downstream identity sync, never written here.
	SidamID        *string         `gorm:"size:64"`
	Appointments   []Appointment   `gorm:"foreignKey:PersonalCode;references:PersonalCode"`
	Authorisations []Authorisation `gorm:"foreignKey:PersonalCode;references:PersonalCode"`
	JudiciaryRoles []JudicialRole  `gorm:"foreignKey:PersonalCode;references:PersonalCode"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

type Appointment struct {
	ID                     int64     `gorm:"primaryKey"`
	PersonalCode           string    `gorm:"size:32;not null;uniqueIndex:idx_appointment_identity;index"`
	BaseLocationID         string    `gorm:"size:64;uniqueIndex:idx_appointment_identity"`
	StartDate              time.Time `gorm:"uniqueIndex:idx_appointment_identity"`
	EndDate                *time.Time
	RegionID               string `gorm:"size:64"`
	EpimmsID               string `gorm:"size:64"`
	Circuit                string `gorm:"size:128"`
	Location               string `gorm:"size:128"`
	IsPrincipalAppointment bool   `gorm:"not null;default:false"`
	RoleName               string `gorm:"size:128"`
	ContractType           string `gorm:"size:64"`
	AppointmentType        string `gorm:"size:64"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (Appointment) TableName() string {
	return "judicial_appointments"
}

type Authorisation struct {
	ID           int64  `gorm:"primaryKey"`
	PersonalCode string `gorm:"size:32;not null;uniqueIndex:idx_authorisation_identity;index"`
	TicketCode   string `gorm:"size:64;uniqueIndex:idx_authorisation_identity"`
	StartDate    *time.Time `gorm:"uniqueIndex:idx_authorisation_identity"`
	EndDate      *time.Time
	Jurisdiction string `gorm:"size:128"`
	Ticket       string `gorm:"size:128"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Authorisation) TableName() string {
	return "judicial_authorisations"
}

type JudicialRole struct {
	ID              int64  `gorm:"primaryKey"`
	PersonalCode    string `gorm:"size:32;not null;uniqueIndex:idx_role_identity;index"`
	JudiciaryRoleID string `gorm:"size:64;uniqueIndex:idx_role_identity"`
	Title           string `gorm:"size:256"`
	StartDate       *time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (JudicialRole) TableName() string {
	return "judicial_role_types"
}
