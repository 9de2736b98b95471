package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) DeleteByPersonalCode(ctx context.Context, personalCode string) error {
	err := r.db.WithContext(ctx).
		Where("personal_code = ?", personalCode).
		Delete(&models.Appointment{}).Error
	if err != nil {
		return fmt.Errorf("delete appointments for %s: %w", personalCode, err)
	}
	return nil
}

func (r *AppointmentRepository) Insert(ctx context.Context, personalCode string, appointment domain.ResolvedAppointment) error {
	row := models.Appointment{
		PersonalCode:           personalCode,
		BaseLocationID:         appointment.BaseLocationID,
		StartDate:              appointment.StartDate,
		EndDate:                appointment.EndDate,
		RegionID:               appointment.RegionID,
		EpimmsID:               appointment.EpimmsID,
		Circuit:                appointment.Circuit,
		Location:               appointment.Location,
		IsPrincipalAppointment: appointment.IsPrincipalAppointment,
		RoleName:               appointment.RoleName,
		ContractType:           appointment.ContractType,
		AppointmentType:        appointment.Type,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert appointment for %s at %s: %w", personalCode, appointment.BaseLocationID, err)
	}
	return nil
}
