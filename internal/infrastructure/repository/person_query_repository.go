package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type PersonQueryRepository struct {
	db *gorm.DB
}

func NewPersonQueryRepository(db *gorm.DB) *PersonQueryRepository {
	return &PersonQueryRepository{db: db}
}

func (r *PersonQueryRepository) GetByPersonalCode(ctx context.Context, personalCode string) (*domain.UserProfile, error) {
	var row models.UserProfile

	err := r.db.WithContext(ctx).
		Preload("Appointments").
		Preload("Authorisations").
		Preload("JudiciaryRoles").
		First(&row, "personal_code = ?", personalCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person %s: %w", personalCode, err)
	}

	profile := &domain.UserProfile{
		PersonalCode:    row.PersonalCode,
		KnownAs:         row.KnownAs,
		Surname:         row.Surname,
		FullName:        row.FullName,
		PostNominals:    row.PostNominals,
		Email:           row.Email,
		ObjectID:        row.ObjectID,
		Initials:        row.Initials,
		LastWorkingDate: row.LastWorkingDate,
		ActiveFlag:      row.ActiveFlag,
		SidamID:         row.SidamID,
	}

	for _, appointment := range row.Appointments {
		profile.Appointments = append(profile.Appointments, domain.ResolvedAppointment{
			AppointmentRecord: domain.AppointmentRecord{
				BaseLocationID:         appointment.BaseLocationID,
				Circuit:                appointment.Circuit,
				Location:               appointment.Location,
				IsPrincipalAppointment: appointment.IsPrincipalAppointment,
				StartDate:              appointment.StartDate,
				EndDate:                appointment.EndDate,
				RoleName:               appointment.RoleName,
				ContractType:           appointment.ContractType,
				Type:                   appointment.AppointmentType,
			},
			RegionID: appointment.RegionID,
			EpimmsID: appointment.EpimmsID,
		})
	}

	for _, authorisation := range row.Authorisations {
		profile.Authorisations = append(profile.Authorisations, domain.AuthorisationRecord{
			Jurisdiction: authorisation.Jurisdiction,
			Ticket:       authorisation.Ticket,
			TicketCode:   authorisation.TicketCode,
			StartDate:    authorisation.StartDate,
			EndDate:      authorisation.EndDate,
		})
	}

	for _, role := range row.JudiciaryRoles {
		profile.JudiciaryRoles = append(profile.JudiciaryRoles, domain.RoleRecord{
			JudiciaryRoleID: role.JudiciaryRoleID,
			Title:           role.Title,
			StartDate:       role.StartDate,
			EndDate:         role.EndDate,
		})
	}

	return profile, nil
}
