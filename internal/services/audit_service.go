package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lookup-console/internal/models"
	"lookup-console/internal/repositories"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog  = errors.New("invalid audit log")
	ErrInvalidRetention = errors.New("retention must be positive")
)

var validActions = map[string]bool{
	models.AuditActionLogin:         true,
	models.AuditActionLogout:        true,
	models.AuditActionSearch:        true,
	models.AuditActionPartialSearch: true,
	models.AuditActionReload:        true,
	models.AuditActionExport:        true,
	models.AuditActionHistory:       true,
	models.AuditActionRecords:       true,
}

var validOutcomes = map[string]bool{
	models.AuditOutcomeSuccess:   true,
	models.AuditOutcomeRejected:  true,
	models.AuditOutcomeFailed:    true,
	models.AuditOutcomeCancelled: true,
	models.AuditOutcomeBlocked:   true,
	models.AuditOutcomeStale:     true,
}

// ValidateActivityType validates that the action is one of the console commands
func ValidateActivityType(action string) error {
	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// ValidateOutcome validates that the outcome is a known outcome
func ValidateOutcome(outcome string) error {
	if !validOutcomes[outcome] {
		return fmt.Errorf("invalid outcome: %s", outcome)
	}
	return nil
}

// Record validates and stores one command outcome
func (s *AuditService) Record(ctx context.Context, entry *models.AuditLog) error {
	if entry == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(entry.Action); err != nil {
		return err
	}

	if err := ValidateOutcome(entry.Outcome); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	if err := s.repo.Create(entry); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// List returns audit entries matching filter
func (s *AuditService) List(filter models.AuditFilter) ([]*models.AuditLog, int64, error) {
	if filter.Action != "" {
		if err := ValidateActivityType(filter.Action); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(filter)
}

// Purge deletes entries older than retention
func (s *AuditService) Purge(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}
	return s.repo.DeleteOlderThan(retention)
}
