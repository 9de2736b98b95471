package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type AuthorisationRepository struct {
	db *gorm.DB
}

func NewAuthorisationRepository(db *gorm.DB) *AuthorisationRepository {
	return &AuthorisationRepository{db: db}
}

func (r *AuthorisationRepository) DeleteByPersonalCode(ctx context.Context, personalCode string) error {
	err := r.db.WithContext(ctx).
		Where("personal_code = ?", personalCode).
		Delete(&models.Authorisation{}).Error
	if err != nil {
		return fmt.Errorf("delete authorisations for %s: %w", personalCode, err)
	}
	return nil
}

func (r *AuthorisationRepository) Insert(ctx context.Context, personalCode string, authorisation domain.AuthorisationRecord) error {
	row := models.Authorisation{
		PersonalCode: personalCode,
		TicketCode:   authorisation.TicketCode,
		StartDate:    authorisation.StartDate,
		EndDate:      authorisation.EndDate,
		Jurisdiction: authorisation.Jurisdiction,
		Ticket:       authorisation.Ticket,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert authorisation %s for %s: %w", authorisation.TicketCode, personalCode, err)
	}
	return nil
}
