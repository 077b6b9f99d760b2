// Package journal records operator mutations in the admin action journal.
package journal

import (
	"context"
	"fmt"

	"orusconsole/internal/models"
	"orusconsole/internal/repositories"

	"go.uber.org/zap"
)

// Journal wraps mutations with a pending row and its outcome. Journal
// failures are logged and never block the mutation itself.
type Journal struct {
	repo   repositories.ActionRepository
	logger *zap.Logger
}

// New builds a journal. repo may be nil, in which case entries are only
// logged.
func New(repo repositories.ActionRepository, logger *zap.Logger) *Journal {
	return &Journal{repo: repo, logger: logger}
}

// Track records action, runs fn and stores its outcome.
func (j *Journal) Track(ctx context.Context, action models.AdminAction, fn func(context.Context) error) error {
	fields := []zap.Field{
		zap.String("admin_id", action.AdminID),
		zap.String("action", action.Action),
		zap.String("target_type", action.TargetType),
		zap.String("target_id", action.TargetID),
	}

	recorded := false
	if j.repo != nil {
		if err := j.repo.Record(ctx, &action); err != nil {
			j.logger.Error("failed to record admin action", append(fields, zap.Error(err))...)
		} else {
			recorded = true
		}
	}

	err := fn(ctx)

	outcome, errMsg := models.OutcomeSucceeded, ""
	if err != nil {
		outcome, errMsg = models.OutcomeFailed, err.Error()
		j.logger.Warn("admin action failed", append(fields, zap.Error(err))...)
	} else {
		j.logger.Info("admin action succeeded", fields...)
	}

	if recorded {
		// the outcome is stored even when the request context is gone
		if cerr := j.repo.Complete(context.WithoutCancel(ctx), action.ID, outcome, errMsg); cerr != nil {
			j.logger.Error("failed to complete admin action", append(fields, zap.Error(cerr))...)
		}
	}
	return err
}

// History returns the latest actions taken against one account, newest
// first. Without a repository it is always empty.
func (j *Journal) History(ctx context.Context, kind models.EntityKind, accountID string, limit int) ([]models.AdminAction, error) {
	if j.repo == nil {
		return []models.AdminAction{}, nil
	}
	actions, err := j.repo.ListByTarget(ctx, string(kind), accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list admin actions: %w", err)
	}
	return actions, nil
}
