package contracts

import (
	"context"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/forms"
)

type SessionService interface {
	// Open returns the context for sessionID. Nothing is read until asked.
	Open(sessionID string) SessionContext
}

// SessionContext is the only way pages touch the session record and the
// navigation state handed from one page to the next.
type SessionContext interface {
	ID() string
	// Read returns nil without an error when nobody is logged in.
	Read(ctx context.Context) (*models.Session, error)
	Write(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
	SaveNavigation(ctx context.Context, navigation *forms.Navigation) error
	// TakeNavigation returns the pending navigation once, then forgets it.
	TakeNavigation(ctx context.Context) (*forms.Navigation, error)
	// Guard is the busy flag for every form of this session.
	Guard() forms.Guard
}
