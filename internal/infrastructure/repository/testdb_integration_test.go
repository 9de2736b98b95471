package repository_test

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const createReconcileTablesSQL = `
CREATE TABLE IF NOT EXISTS user_profiles (
  personal_code VARCHAR(32) PRIMARY KEY,
  known_as VARCHAR(64),
  surname VARCHAR(128),
  full_name VARCHAR(256),
  post_nominals VARCHAR(32),
  email VARCHAR(320),
  object_id VARCHAR(64),
  initials VARCHAR(16),
  last_working_date TIMESTAMPTZ,
  active_flag BOOLEAN NOT NULL DEFAULT TRUE,
  sidam_id VARCHAR(64),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS judicial_appointments (
  id BIGSERIAL PRIMARY KEY,
  personal_code VARCHAR(32) NOT NULL,
  base_location_id VARCHAR(64),
  start_date TIMESTAMPTZ,
  end_date TIMESTAMPTZ,
  region_id VARCHAR(64),
  epimms_id VARCHAR(64),
  circuit VARCHAR(128),
  location VARCHAR(128),
  is_principal_appointment BOOLEAN NOT NULL DEFAULT FALSE,
  role_name VARCHAR(128),
  contract_type VARCHAR(64),
  appointment_type VARCHAR(64),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (personal_code, base_location_id, start_date)
);
CREATE TABLE IF NOT EXISTS judicial_authorisations (
  id BIGSERIAL PRIMARY KEY,
  personal_code VARCHAR(32) NOT NULL,
  ticket_code VARCHAR(64),
  start_date TIMESTAMPTZ,
  end_date TIMESTAMPTZ,
  jurisdiction VARCHAR(128),
  ticket VARCHAR(128),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (personal_code, ticket_code, start_date)
);
CREATE TABLE IF NOT EXISTS judicial_role_types (
  id BIGSERIAL PRIMARY KEY,
  personal_code VARCHAR(32) NOT NULL,
  judiciary_role_id VARCHAR(64),
  title VARCHAR(256),
  start_date TIMESTAMPTZ,
  end_date TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (personal_code, judiciary_role_id)
);
`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	return db
}
