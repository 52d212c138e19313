// Package models contains the GORM database models of the persistence layer.
package models

import (
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
)

// JobModel is the GORM database model for generation jobs (infrastructure concern)
type JobModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	SheetID          string    `gorm:"not null;index;type:varchar(255)"`
	Worksheet        string    `gorm:"not null;type:varchar(255)"`
	StartRow         int       `gorm:"not null"`
	EndRow           int       `gorm:"not null"`
	Force            bool      `gorm:"not null"`
	DryRun           bool      `gorm:"not null"`
	State            string    `gorm:"not null;type:varchar(20);index"`
	Processed        int       `gorm:"not null"`
	Error            string    `gorm:"type:text"`
	DateTimeStarted  time.Time `gorm:"not null"`
	DateTimeFinished *time.Time
}

// TableName specifies the table name for GORM
func (JobModel) TableName() string {
	return "generation_jobs"
}

// ToDomain converts GORM model to domain entity
func (m *JobModel) ToDomain() *generation.Job {
	return &generation.Job{
		ID:               m.ID,
		SheetID:          m.SheetID,
		Worksheet:        m.Worksheet,
		StartRow:         m.StartRow,
		EndRow:           m.EndRow,
		Force:            m.Force,
		DryRun:           m.DryRun,
		State:            generation.JobState(m.State),
		Processed:        m.Processed,
		Error:            m.Error,
		DateTimeStarted:  m.DateTimeStarted,
		DateTimeFinished: m.DateTimeFinished,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobModel) FromDomain(j *generation.Job) {
	m.ID = j.ID
	m.SheetID = j.SheetID
	m.Worksheet = j.Worksheet
	m.StartRow = j.StartRow
	m.EndRow = j.EndRow
	m.Force = j.Force
	m.DryRun = j.DryRun
	m.State = string(j.State)
	m.Processed = j.Processed
	m.Error = j.Error
	m.DateTimeStarted = j.DateTimeStarted
	m.DateTimeFinished = j.DateTimeFinished
}

// JobEventModel is the GORM database model for job log events
type JobEventModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	JobID     string    `gorm:"not null;index;type:uuid"`
	Timestamp time.Time `gorm:"not null"`
	Level     string    `gorm:"not null;type:varchar(10)"`
	Message   string    `gorm:"not null;type:text"`
}

// TableName specifies the table name for GORM
func (JobEventModel) TableName() string {
	return "generation_job_events"
}

// ToDomain converts GORM model to domain entity
func (m *JobEventModel) ToDomain() *generation.LogEvent {
	return &generation.LogEvent{
		JobID:     m.JobID,
		Timestamp: m.Timestamp,
		Level:     m.Level,
		Message:   m.Message,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobEventModel) FromDomain(e *generation.LogEvent) {
	m.JobID = e.JobID
	m.Timestamp = e.Timestamp
	m.Level = e.Level
	m.Message = e.Message
}
