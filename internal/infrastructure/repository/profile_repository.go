package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert inserts the profile, or refreshes its mutable fields when the
// personal code already exists. SidamID is deliberately left out of the
// update set: it belongs to the downstream identity sync.
func (r *ProfileRepository) Upsert(ctx context.Context, profile domain.UserProfile) error {
	row := models.UserProfile{
		PersonalCode:    profile.PersonalCode,
		KnownAs:         profile.KnownAs,
		Surname:         profile.Surname,
		FullName:        profile.FullName,
		PostNominals:    profile.PostNominals,
		Email:           profile.Email,
		ObjectID:        profile.ObjectID,
		Initials:        profile.Initials,
		LastWorkingDate: profile.LastWorkingDate,
		ActiveFlag:      profile.ActiveFlag,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "personal_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"known_as", "surname", "full_name", "post_nominals", "email",
				"object_id", "initials", "last_working_date", "active_flag",
				"updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert user profile %s: %w", profile.PersonalCode, err)
	}

	return nil
}
