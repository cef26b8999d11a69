package tracking

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

const (
	DefaultPollInterval = time.Second
	DefaultMaxWait      = 30 * time.Second
)

// Tracking отдаёт клиенту состояние заявки не позже чем через PollInterval после изменения.
type Tracking struct {
	requestService RequestService
	pollInterval   time.Duration
	maxWait        time.Duration
}

func New(requestService RequestService, pollInterval, maxWait time.Duration) *Tracking {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}

	return &Tracking{
		requestService: requestService,
		pollInterval:   pollInterval,
		maxWait:        maxWait,
	}
}

// WaitForUpdate опрашивает заявку, пока она не изменится после since, не станет
// терминальной или не истечёт maxWait. Второе значение true, если заявка изменилась.
func (t *Tracking) WaitForUpdate(ctx context.Context, id uuid.UUID, since time.Time) (*entities.TransportRequest, bool, error) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(t.maxWait)
	defer deadline.Stop()

	for {
		request, err := t.requestService.GetRequest(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("wait for update: %w", err)
		}

		if request.UpdatedAt.After(since) {
			return request, true, nil
		}
		if request.Status.IsTerminal() {
			return request, false, nil
		}

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-deadline.C:
			return request, false, nil
		case <-ticker.C:
		}
	}
}
