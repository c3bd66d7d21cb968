package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"zimmery/infras/otel"
	"zimmery/internal/domains/errorlog/model"
	"zimmery/internal/domains/errorlog/repository"
	"zimmery/shared/constant"
	gDto "zimmery/shared/dto"
	"zimmery/shared/timezone"
)

// Capacity bounds the in-memory ring. The oldest entry is dropped when a new
// one arrives at capacity.
const Capacity = 10

type ErrorLog interface {
	Log(ctx context.Context, message, stack string)
	Recent(ctx context.Context) []model.ErrorLog
	Clear(ctx context.Context)
}

// serviceImpl is a sink: the in-memory ring is the source of truth and
// persistence is best-effort. No method ever returns an error, so logging a
// failure can never itself fail the caller.
type serviceImpl struct {
	repo repository.ErrorLog
	otel otel.Otel

	mu   sync.Mutex
	ring []model.ErrorLog
}

func New(repo repository.ErrorLog, otel otel.Otel) ErrorLog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Log appends synchronously to the ring, newest first, then persists
// best-effort.
func (s *serviceImpl) Log(ctx context.Context, message, stack string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Log")
	defer scope.End()

	entry := model.ErrorLog{
		ID:        uuid.NewString(),
		Message:   message,
		Stack:     stack,
		Timestamp: timezone.Now(),
	}

	s.mu.Lock()
	s.ring = append([]model.ErrorLog{entry}, s.ring...)
	if len(s.ring) > Capacity {
		s.ring = s.ring[:Capacity]
	}
	s.mu.Unlock()

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("failed to persist error log entry")
	}
}

// Recent returns the ring contents, newest first.
func (s *serviceImpl) Recent(ctx context.Context) []model.ErrorLog {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ErrorLog, len(s.ring))
	copy(out, s.ring)

	return out
}

// Clear empties the ring first, then deletes persisted rows best-effort.
func (s *serviceImpl) Clear(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()

	s.mu.Lock()
	s.ring = nil
	s.mu.Unlock()

	all := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}

	if err := s.repo.Delete(ctx, all); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted error logs")
	}
}
