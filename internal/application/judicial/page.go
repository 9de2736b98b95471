package judicial

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

// Page is one decoded feed page: per-row conversion results plus the
// pagination block that drives loop continuation.
type Page struct {
	Records    []RecordResult
	Pagination domain.Pagination
}

// RecordResult carries either a converted person or the conversion error
// for that row. Row-level errors never fail the page.
type RecordResult struct {
	RowID  string
	Person *domain.PersonRecord
	Err    error
}

type rawPage struct {
	Results    []rawPerson    `json:"results"`
	Pagination *rawPagination `json:"pagination"`
}

type rawPagination struct {
	Results        int  `json:"results"`
	Pages          int  `json:"pages"`
	CurrentPage    int  `json:"current_page"`
	ResultsPerPage int  `json:"results_per_page"`
	MorePages      bool `json:"more_pages"`
}

type rawPerson struct {
	PersonalCode    string             `json:"personal_code"`
	KnownAs         string             `json:"known_as"`
	Surname         string             `json:"surname"`
	FullName        string             `json:"full_name"`
	PostNominals    string             `json:"post_nominals"`
	Email           string             `json:"email"`
	ObjectID        string             `json:"object_id"`
	Initials        string             `json:"initials"`
	LastWorkingDate string             `json:"last_working_date"`
	Appointments    []rawAppointment   `json:"appointments"`
	Authorisations  []rawAuthorisation `json:"authorisations"`
	JudiciaryRoles  []rawRole          `json:"judiciary_roles"`
}

type rawAppointment struct {
	BaseLocationID         string `json:"base_location_id"`
	Circuit                string `json:"circuit"`
	Location               string `json:"location"`
	IsPrincipalAppointment bool   `json:"is_principal_appointment"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	RoleName               string `json:"role_name"`
	ContractType           string `json:"contract_type"`
	Type                   string `json:"type"`
}

type rawAuthorisation struct {
	Jurisdiction string `json:"jurisdiction"`
	Ticket       string `json:"ticket"`
	TicketCode   string `json:"ticket_code"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type rawRole struct {
	JudiciaryRoleID string `json:"judiciary_role_id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// ParsePage decodes a raw feed body. A body that cannot be decoded, or
// one missing its results or pagination block, is a protocol violation
// and fails the whole page with ErrMalformedPage.
func ParsePage(body []byte) (Page, error) {
	var raw rawPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Page{}, fmt.Errorf("%w: %v", domain.ErrMalformedPage, err)
	}
	if raw.Results == nil {
		return Page{}, fmt.Errorf("%w: results block missing", domain.ErrMalformedPage)
	}
	if raw.Pagination == nil {
		return Page{}, fmt.Errorf("%w: pagination block missing", domain.ErrMalformedPage)
	}

	page := Page{
		Records: make([]RecordResult, 0, len(raw.Results)),
		Pagination: domain.Pagination{
			Results:        raw.Pagination.Results,
			Pages:          raw.Pagination.Pages,
			CurrentPage:    raw.Pagination.CurrentPage,
			ResultsPerPage: raw.Pagination.ResultsPerPage,
			MorePages:      raw.Pagination.MorePages,
		},
	}

	for i, row := range raw.Results {
		result := RecordResult{RowID: strconv.Itoa(i)}
		person, err := row.toDomain()
		if err != nil {
			result.Err = err
		} else {
			result.Person = &person
		}
		page.Records = append(page.Records, result)
	}

	return page, nil
}

func (p rawPerson) toDomain() (domain.PersonRecord, error) {
	if strings.TrimSpace(p.PersonalCode) == "" {
		return domain.PersonRecord{}, fmt.Errorf("personal_code is empty")
	}

	lastWorking, err := parseOptionalDate(p.LastWorkingDate)
	if err != nil {
		return domain.PersonRecord{}, fmt.Errorf("last_working_date: %w", err)
	}

	person := domain.PersonRecord{
		PersonalCode:    p.PersonalCode,
		KnownAs:         p.KnownAs,
		Surname:         p.Surname,
		FullName:        p.FullName,
		PostNominals:    p.PostNominals,
		Email:           p.Email,
		ObjectID:        p.ObjectID,
		Initials:        p.Initials,
		LastWorkingDate: lastWorking,
	}

	for _, a := range p.Appointments {
		start, err := parseDate(a.StartDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("appointment start_date: %w", err)
		}
		end, err := parseOptionalDate(a.EndDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("appointment end_date: %w", err)
		}
		person.Appointments = append(person.Appointments, domain.AppointmentRecord{
			BaseLocationID:         a.BaseLocationID,
			Circuit:                a.Circuit,
			Location:               a.Location,
			IsPrincipalAppointment: a.IsPrincipalAppointment,
			StartDate:              start,
			EndDate:                end,
			RoleName:               a.RoleName,
			ContractType:           a.ContractType,
			Type:                   a.Type,
		})
	}

	for _, a := range p.Authorisations {
		start, err := parseOptionalDate(a.StartDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("authorisation start_date: %w", err)
		}
		end, err := parseOptionalDate(a.EndDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("authorisation end_date: %w", err)
		}
		person.Authorisations = append(person.Authorisations, domain.AuthorisationRecord{
			Jurisdiction: a.Jurisdiction,
			Ticket:       a.Ticket,
			TicketCode:   a.TicketCode,
			StartDate:    start,
			EndDate:      end,
		})
	}

	for _, r := range p.JudiciaryRoles {
		start, err := parseOptionalDate(r.StartDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("judiciary role start_date: %w", err)
		}
		end, err := parseOptionalDate(r.EndDate)
		if err != nil {
			return domain.PersonRecord{}, fmt.Errorf("judiciary role end_date: %w", err)
		}
		person.JudiciaryRoles = append(person.JudiciaryRoles, domain.RoleRecord{
			JudiciaryRoleID: r.JudiciaryRoleID,
			Title:           r.Name,
			StartDate:       start,
			EndDate:         end,
		})
	}

	return person, nil
}

// The feed mixes date-only and RFC 3339 timestamp formats across fields.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
