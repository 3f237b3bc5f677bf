package mocks

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/forms"

	"github.com/stretchr/testify/mock"
)

type SessionContext struct {
	mock.Mock
	// GuardValue is returned by Guard, nil disables the submission lock.
	GuardValue forms.Guard
}

func (m *SessionContext) ID() string {
	return "00000000-0000-0000-0000-000000000001"
}

func (m *SessionContext) Read(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionContext) Write(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionContext) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SessionContext) SaveNavigation(ctx context.Context, navigation *forms.Navigation) error {
	args := m.Called(ctx, navigation)
	return args.Error(0)
}

func (m *SessionContext) TakeNavigation(ctx context.Context) (*forms.Navigation, error) {
	args := m.Called(ctx)
	navigation, _ := args.Get(0).(*forms.Navigation)
	return navigation, args.Error(1)
}

func (m *SessionContext) Guard() forms.Guard {
	return m.GuardValue
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Open(sessionID string) contracts.SessionContext {
	args := m.Called(sessionID)
	session, _ := args.Get(0).(contracts.SessionContext)
	return session
}
