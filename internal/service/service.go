// Package service holds the trainer and student use-cases. Every call takes the caller's
// identity explicitly; nothing is read from a global session.
package service

import (
	"alcyxob/weekly-plans/internal/domain"
	"alcyxob/weekly-plans/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrRoleNotAllowed   = errors.New("role is not allowed to perform this action")
	ErrWeekAccessDenied = errors.New("access denied to this training week")
	ErrWeekNotFound     = errors.New("training week not found")
	ErrDayNotFound      = errors.New("training day not found")
	ErrInvalidDateRange = errors.New("week end date is before its start date")
)

var tracer = otel.Tracer("weekly-plans/service")

// endSpan records err on the span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

func requireRole(caller domain.Identity, role domain.Role) error {
	if strings.TrimSpace(caller.UserID) == "" || caller.Role != role {
		return ErrRoleNotAllowed
	}
	return nil
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", repository.ErrInvalidArgument, name)
	}
	return nil
}

// getWeek loads a week, translating a missing one into ErrWeekNotFound.
func getWeek(ctx context.Context, repo repository.WeekRepository, weekID string) (*domain.TrainingWeek, error) {
	week, err := repo.GetWeek(ctx, weekID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeekNotFound
		}
		return nil, fmt.Errorf("get week: %w", err)
	}
	return week, nil
}
