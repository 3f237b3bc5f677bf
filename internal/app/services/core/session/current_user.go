package session

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/forms"
)

// CurrentUser reads the session record for a page that needs it. When
// nobody is logged in, or the record cannot be read, the reason is written
// to state and nil is returned.
func CurrentUser(ctx context.Context, session contracts.SessionContext, state *forms.State, fallback string) *models.Session {
	user, err := session.Read(ctx)
	if err != nil {
		state.Message = fallback
		return nil
	}
	if user == nil {
		state.Message = constvars.LoginRequiredMessage
		return nil
	}
	return user
}
