package waitlist

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/imsurajj/amsoft/pkg/logger"
	"github.com/imsurajj/amsoft/pkg/tracing"
)

// Store persists waitlist records.
type Store interface {
	Append(ctx context.Context, rec Record) error
}

// Service turns validated signups into records and hands them to the store.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new waitlist service
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With(logger.Scope("waitlist.svc")),
		now:   time.Now,
	}
}

// Submit stamps the signup with the current UTC time and appends it. Every
// call appends; identical signups produce separate rows.
func (s *Service) Submit(ctx context.Context, signup Signup) (Record, error) {
	rec := Record{
		Name:      signup.Name,
		Email:     signup.Email,
		Timestamp: s.now().UTC(),
	}

	ctx, span := tracing.Start(ctx, "waitlist.submit",
		attribute.String("waitlist.timestamp", rec.Timestamp.Format(TimestampLayout)),
	)
	defer span.End()

	start := time.Now()
	err := s.store.Append(ctx, rec)
	AppendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		tracing.Fail(span, err)
		return Record{}, err
	}

	s.log.Info("signup recorded",
		slog.String("name", rec.Name),
		slog.String("email", rec.Email),
		slog.String("timestamp", rec.Timestamp.Format(TimestampLayout)),
	)
	return rec, nil
}
