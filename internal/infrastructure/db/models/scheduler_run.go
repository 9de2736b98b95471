package models

import "time"

type SchedulerRun struct {
	ID            int64     `gorm:"primaryKey"`
	SchedulerName string    `gorm:"size:128;not null"`
	APIName       string    `gorm:"size:64;not null;index"`
	StartTime     time.Time `gorm:"not null"`
	EndTime       *time.Time
	Status        string `gorm:"size:32;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SchedulerRun) TableName() string {
	return "scheduler_runs"
}
