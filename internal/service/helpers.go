package service

import (
	"context"
	"time"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// dayKey formats t as a local-time day key.
func dayKey(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
