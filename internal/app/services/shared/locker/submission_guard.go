package locker

import (
	"context"
	"fmt"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/forms"
	"time"
)

const releaseTimeout = 3 * time.Second

type submissionGuard struct {
	locker    contracts.LockerService
	sessionID string
	ttl       time.Duration
}

// NewSubmissionGuard scopes the busy flag to one session. The ttl bounds how
// long a crashed request can keep a form locked.
func NewSubmissionGuard(locker contracts.LockerService, sessionID string, ttl time.Duration) forms.Guard {
	return &submissionGuard{
		locker:    locker,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func SubmissionLockKey(sessionID, form string) string {
	return fmt.Sprintf("%s:%s:%s", constvars.SubmissionLockPrefix, sessionID, form)
}

func (g *submissionGuard) Acquire(ctx context.Context, form string) (func(), error) {
	key := SubmissionLockKey(g.sessionID, form)

	acquired, lockValue, err := g.locker.TryLock(ctx, key, g.ttl)
	if err != nil {
		return nil, exceptions.ErrSubmissionLockAcquire(err)
	}
	if !acquired {
		return nil, forms.ErrInFlight
	}

	release := func() {
		// The lock must go even when the client already hung up.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		_ = g.locker.Unlock(releaseCtx, key, lockValue)
	}
	return release, nil
}
