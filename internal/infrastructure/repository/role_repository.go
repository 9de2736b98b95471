package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) DeleteByPersonalCode(ctx context.Context, personalCode string) error {
	err := r.db.WithContext(ctx).
		Where("personal_code = ?", personalCode).
		Delete(&models.JudicialRole{}).Error
	if err != nil {
		return fmt.Errorf("delete judicial roles for %s: %w", personalCode, err)
	}
	return nil
}

func (r *RoleRepository) Insert(ctx context.Context, personalCode string, role domain.RoleRecord) error {
	row := models.JudicialRole{
		PersonalCode:    personalCode,
		JudiciaryRoleID: role.JudiciaryRoleID,
		Title:           role.Title,
		StartDate:       role.StartDate,
		EndDate:         role.EndDate,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert judicial role %s for %s: %w", role.JudiciaryRoleID, personalCode, err)
	}
	return nil
}
