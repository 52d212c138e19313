package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormJobRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormJobRepository creates a new GORM-based JobRepository implementation
func NewGormJobRepository(db *gorm.DB, logger logger.Logger) (generation.JobRepository, error) {
	return &gormJobRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormJobRepository) Create(ctx context.Context, job *generation.Job) error {
	// Validate domain entity (business rules)
	if err := job.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobModel{}
	model.FromDomain(job)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	r.logger.Info("Created generation job with id ", job.ID)
	return nil
}

func (r *gormJobRepository) UpdateByID(ctx context.Context, job *generation.Job) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobModel{}
	model.FromDomain(job)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	r.logger.Info("Updated generation job with id ", job.ID)
	return nil
}

func (r *gormJobRepository) GetByID(ctx context.Context, jobID string) (*generation.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job with ID %s not found", jobID)
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormJobRepository) List(ctx context.Context, limit int) ([]*generation.Job, error) {
	var modelList []*models.JobModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Order("date_time_started desc")

	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	domainList := make([]*generation.Job, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormJobRepository) AppendLog(ctx context.Context, event *generation.LogEvent) error {
	model := &models.JobEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append job log event: %w", err)
	}

	return nil
}

func (r *gormJobRepository) ListLogs(ctx context.Context, jobID string) ([]*generation.LogEvent, error) {
	var modelList []*models.JobEventModel
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch job log events: %w", err)
	}

	domainList := make([]*generation.LogEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
