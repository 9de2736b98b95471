package judicial

import "time"

// UserProfile is the persisted shape of a person: one row per personal
// code plus its nested collections. SidamID is populated by a separate
// downstream identity sync and only carried here.
type UserProfile struct {
	PersonalCode    string
	KnownAs         string
	Surname         string
	FullName        string
	PostNominals    string
	Email           string
	ObjectID        string
	Initials        string
	LastWorkingDate *time.Time
	ActiveFlag      bool
	SidamID         *string
	Appointments    []ResolvedAppointment
	Authorisations  []AuthorisationRecord
	JudiciaryRoles  []RoleRecord
}

// ResolvedAppointment is an appointment enriched with reference lookups.
// RegionID and EpimmsID stay blank when resolution missed; a miss is not
// an error.
type ResolvedAppointment struct {
	AppointmentRecord
	RegionID string
	EpimmsID string
}
