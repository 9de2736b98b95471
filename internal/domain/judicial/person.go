package judicial

import (
	"strings"
	"time"
)

// PersonRecord is one judicial office holder as delivered by the upstream
// people feed, before reconciliation into the store. PersonalCode is the
// stable external identifier and the upsert key for everything nested.
type PersonRecord struct {
	PersonalCode    string
	KnownAs         string
	Surname         string
	FullName        string
	PostNominals    string
	Email           string
	ObjectID        string
	Initials        string
	LastWorkingDate *time.Time
	Appointments    []AppointmentRecord
	Authorisations  []AuthorisationRecord
	JudiciaryRoles  []RoleRecord
}

// Active reports whether the office holder is still serving: no last
// working date, or one that has not yet passed.
func (p PersonRecord) Active(now time.Time) bool {
	return p.LastWorkingDate == nil || p.LastWorkingDate.After(now)
}

type AppointmentRecord struct {
	BaseLocationID         string
	Circuit                string
	Location               string
	IsPrincipalAppointment bool
	StartDate              time.Time
	EndDate                *time.Time
	RoleName               string
	ContractType           string
	Type                   string
}

type AuthorisationRecord struct {
	Jurisdiction string
	Ticket       string
	TicketCode   string
	StartDate    *time.Time
	EndDate      *time.Time
}

type RoleRecord struct {
	JudiciaryRoleID string
	Title           string
	StartDate       *time.Time
	EndDate         *time.Time
}

// Pagination is the loop-driving block every feed page must carry.
type Pagination struct {
	Results        int
	Pages          int
	CurrentPage    int
	ResultsPerPage int
	MorePages      bool
}

// RoleNameSet is the allow-list of recognized appointment role names.
// Appointments whose role name is not in the set are skipped, not failed.
type RoleNameSet map[string]struct{}

func NewRoleNameSet(names []string) RoleNameSet {
	set := make(RoleNameSet, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		set[strings.ToLower(trimmed)] = struct{}{}
	}
	return set
}

func (s RoleNameSet) Contains(roleName string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(roleName))]
	return ok
}
