package judicial

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

var personalCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)

type GetPersonByCodeInput struct {
	PersonalCode string
}

type GetPersonAppointmentOutput struct {
	BaseLocationID         string  `json:"base_location_id"`
	RegionID               string  `json:"region_id,omitempty"`
	EpimmsID               string  `json:"epimms_id,omitempty"`
	Circuit                string  `json:"circuit"`
	Location               string  `json:"location"`
	IsPrincipalAppointment bool    `json:"is_principal_appointment"`
	StartDate              string  `json:"start_date"`
	EndDate                *string `json:"end_date,omitempty"`
	RoleName               string  `json:"role_name"`
	ContractType           string  `json:"contract_type"`
	Type                   string  `json:"type"`
}

type GetPersonAuthorisationOutput struct {
	Jurisdiction string  `json:"jurisdiction"`
	Ticket       string  `json:"ticket"`
	TicketCode   string  `json:"ticket_code"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}

type GetPersonRoleOutput struct {
	JudiciaryRoleID string  `json:"judiciary_role_id"`
	Title           string  `json:"title"`
	StartDate       *string `json:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
}

type GetPersonByCodeOutput struct {
	PersonalCode    string                         `json:"personal_code"`
	KnownAs         string                         `json:"known_as"`
	Surname         string                         `json:"surname"`
	FullName        string                         `json:"full_name"`
	PostNominals    string                         `json:"post_nominals"`
	Email           string                         `json:"email"`
	ObjectID        string                         `json:"object_id"`
	Initials        string                         `json:"initials"`
	LastWorkingDate *string                        `json:"last_working_date,omitempty"`
	ActiveFlag      bool                           `json:"active_flag"`
	SidamID         *string                        `json:"sidam_id,omitempty"`
	Appointments    []GetPersonAppointmentOutput   `json:"appointments"`
	Authorisations  []GetPersonAuthorisationOutput `json:"authorisations"`
	JudiciaryRoles  []GetPersonRoleOutput          `json:"judiciary_roles"`
}

type GetPersonByCode interface {
	Execute(ctx context.Context, in GetPersonByCodeInput) (GetPersonByCodeOutput, error)
}

type getPersonByCode struct {
	store domain.PersonQueryStore
}

func NewGetPersonByCode(store domain.PersonQueryStore) GetPersonByCode {
	return &getPersonByCode{store: store}
}

func (uc *getPersonByCode) Execute(ctx context.Context, in GetPersonByCodeInput) (GetPersonByCodeOutput, error) {
	if !personalCodePattern.MatchString(in.PersonalCode) {
		return GetPersonByCodeOutput{}, ErrInvalidPersonalCode
	}

	profile, err := uc.store.GetByPersonalCode(ctx, in.PersonalCode)
	if err != nil {
		if errors.Is(err, domain.ErrPersonNotFound) {
			return GetPersonByCodeOutput{}, ErrPersonNotFound
		}
		return GetPersonByCodeOutput{}, fmt.Errorf("%w: %v", ErrGetPerson, err)
	}

	out := GetPersonByCodeOutput{
		PersonalCode:    profile.PersonalCode,
		KnownAs:         profile.KnownAs,
		Surname:         profile.Surname,
		FullName:        profile.FullName,
		PostNominals:    profile.PostNominals,
		Email:           profile.Email,
		ObjectID:        profile.ObjectID,
		Initials:        profile.Initials,
		LastWorkingDate: formatOptionalDate(profile.LastWorkingDate),
		ActiveFlag:      profile.ActiveFlag,
		SidamID:         profile.SidamID,
		Appointments:    make([]GetPersonAppointmentOutput, 0, len(profile.Appointments)),
		Authorisations:  make([]GetPersonAuthorisationOutput, 0, len(profile.Authorisations)),
		JudiciaryRoles:  make([]GetPersonRoleOutput, 0, len(profile.JudiciaryRoles)),
	}

	for _, appointment := range profile.Appointments {
		out.Appointments = append(out.Appointments, GetPersonAppointmentOutput{
			BaseLocationID:         appointment.BaseLocationID,
			RegionID:               appointment.RegionID,
			EpimmsID:               appointment.EpimmsID,
			Circuit:                appointment.Circuit,
			Location:               appointment.Location,
			IsPrincipalAppointment: appointment.IsPrincipalAppointment,
			StartDate:              appointment.StartDate.Format("2006-01-02"),
			EndDate:                formatOptionalDate(appointment.EndDate),
			RoleName:               appointment.RoleName,
			ContractType:           appointment.ContractType,
			Type:                   appointment.Type,
		})
	}

	for _, authorisation := range profile.Authorisations {
		out.Authorisations = append(out.Authorisations, GetPersonAuthorisationOutput{
			Jurisdiction: authorisation.Jurisdiction,
			Ticket:       authorisation.Ticket,
			TicketCode:   authorisation.TicketCode,
			StartDate:    formatOptionalDate(authorisation.StartDate),
			EndDate:      formatOptionalDate(authorisation.EndDate),
		})
	}

	for _, role := range profile.JudiciaryRoles {
		out.JudiciaryRoles = append(out.JudiciaryRoles, GetPersonRoleOutput{
			JudiciaryRoleID: role.JudiciaryRoleID,
			Title:           role.Title,
			StartDate:       formatOptionalDate(role.StartDate),
			EndDate:         formatOptionalDate(role.EndDate),
		})
	}

	return out, nil
}

func formatOptionalDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format("2006-01-02")
	return &formatted
}
