package pending_backlog

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	PendingBacklog(ctx context.Context) (*entities.PendingBacklog, error)
}

type PendingBacklog struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewPendingBacklog(log logger.Logger, service Service, interval time.Duration) *PendingBacklog {
	return &PendingBacklog{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (p *PendingBacklog) TTL() time.Duration {
	return p.interval
}

func (p *PendingBacklog) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	backlog, err := p.service.PendingBacklog(ctxWithTimeout)
	if err != nil {
		return err
	}

	PendingRequests.Set(float64(backlog.Count))

	var oldestAge time.Duration
	if backlog.OldestCreated != nil {
		oldestAge = p.now().Sub(*backlog.OldestCreated)
	}
	OldestPendingAgeSeconds.Set(oldestAge.Seconds())

	if backlog.Count > 0 {
		p.log.With(
			logger.NewField("pending_requests", backlog.Count),
			logger.NewField("oldest_pending_age", oldestAge.String()),
		).Info("pending backlog")
	}

	return nil
}

func (p *PendingBacklog) Info() string {
	return "pending backlog"
}
