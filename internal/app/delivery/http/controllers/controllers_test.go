package controllers

import (
	"context"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/app/mocks"
	"medibook-web/internal/app/services/core/auth"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	controller *AuthController
	backend    *mocks.BackendClient
	session    *mocks.SessionContext
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	renderer, err := views.NewRenderer(zap.NewNop())
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{ForgotPasswordRedirectDelayInSeconds: 2},
	}
	backend := new(mocks.BackendClient)
	session := new(mocks.SessionContext)
	session.On("Read", mock.Anything).Return(nil, nil).Maybe()

	logger := zap.NewNop()
	return &authFixture{
		controller: NewAuthController(logger, NewPresenter(logger, renderer), auth.NewAuthUsecase(backend, internalConfig, logger)),
		backend:    backend,
		session:    session,
	}
}

type busyGuard struct{}

func (busyGuard) Acquire(ctx context.Context, form string) (func(), error) {
	return nil, forms.ErrInFlight
}

func postForm(session *mocks.SessionContext, path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return withSession(req, session)
}

func withSession(req *http.Request, session *mocks.SessionContext) *http.Request {
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request")
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
	return req.WithContext(ctx)
}

func TestAuthController_Login(t *testing.T) {
	t.Run("Doctor Redirects To Dashboard", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.backend.On("Login", mock.Anything, &requests.LoginUser{Username: "drwho", Password: "secret1"}).
			Return(responses.Ok(responses.LoginUser{Username: "drwho", Name: "John", Role: "DOCTOR"}))
		fx.session.On("Write", mock.Anything, mock.Anything).Return(nil)
		fx.session.On("SaveNavigation", mock.Anything, mock.MatchedBy(func(n *forms.Navigation) bool {
			return n.Path == constvars.RouteDoctorDashboard && n.Flash == "Welcome John! Redirecting to your dashboard..."
		})).Return(nil)

		rec := httptest.NewRecorder()
		fx.controller.Login(rec, postForm(fx.session, "/login", url.Values{"username": {"drwho"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteDoctorDashboard, rec.Header().Get(constvars.HeaderLocation))
		fx.session.AssertExpectations(t)
	})

	t.Run("Invalid Input Renders 422", func(t *testing.T) {
		fx := newAuthFixture(t)

		rec := httptest.NewRecorder()
		fx.controller.Login(rec, postForm(fx.session, "/login", url.Values{"username": {"jo"}, "password": {"topsecret"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Username must be at least 3 characters long.")
		assert.Contains(t, body, constvars.LoginInvalidMessage)
		assert.NotContains(t, body, "topsecret")
		fx.backend.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Failure Without Server Text", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.backend.On("Login", mock.Anything, mock.Anything).Return(responses.Fail[responses.LoginUser](""))

		rec := httptest.NewRecorder()
		fx.controller.Login(rec, postForm(fx.session, "/login", url.Values{"username": {"drwho"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.LoginFallback)
	})

	t.Run("Concurrent Submit Leaves Form Usable", func(t *testing.T) {
		fx := newAuthFixture(t)
		fx.session.GuardValue = busyGuard{}

		rec := httptest.NewRecorder()
		fx.controller.Login(rec, postForm(fx.session, "/login", url.Values{"username": {"drwho"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, constvars.ErrClientRequestInFlight)
		assert.NotContains(t, body, "disabled")
		assert.NotContains(t, body, "aria-busy")
		fx.backend.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthController_ForgotPassword(t *testing.T) {
	fx := newAuthFixture(t)
	fx.backend.On("ForgotPassword", mock.Anything, &requests.ForgotPassword{Email: "jane@example.com"}).
		Return(responses.Ok(responses.Ack{}))
	fx.session.On("SaveNavigation", mock.Anything, mock.MatchedBy(func(n *forms.Navigation) bool {
		return n.Path == constvars.RouteResetPassword && n.State["email"] == "jane@example.com" && n.Flash == ""
	})).Return(nil)

	rec := httptest.NewRecorder()
	fx.controller.ForgotPassword(rec, postForm(fx.session, "/forgot-password", url.Values{"email": {"jane@example.com"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2; url=/reset-password", rec.Header().Get(constvars.HeaderRefresh))
	assert.Contains(t, rec.Body.String(), constvars.ForgotPasswordSuccessMessage)
	fx.session.AssertExpectations(t)
}

func TestAuthController_ShowResetPassword(t *testing.T) {
	fx := newAuthFixture(t)
	fx.session.On("TakeNavigation", mock.Anything).Return(
		forms.NavigateTo(constvars.RouteResetPassword).WithState("email", "jane@example.com").WithFlash("Check your inbox"), nil)

	rec := httptest.NewRecorder()
	fx.controller.ShowResetPassword(rec, withSession(httptest.NewRequest(http.MethodGet, "/reset-password", nil), fx.session))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="jane@example.com"`)
	assert.Contains(t, rec.Body.String(), "Check your inbox")
}

func TestAuthController_ShowVerifyEmail_QueryPrefill(t *testing.T) {
	fx := newAuthFixture(t)
	fx.session.On("TakeNavigation", mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	fx.controller.ShowVerifyEmail(rec, withSession(httptest.NewRequest(http.MethodGet, "/verify-email?username=alice", nil), fx.session))

	assert.Contains(t, rec.Body.String(), `value="alice"`)
}

func TestAuthController_Logout(t *testing.T) {
	fx := newAuthFixture(t)
	fx.session.On("Clear", mock.Anything).Return(nil)
	fx.session.On("SaveNavigation", mock.Anything, mock.MatchedBy(func(n *forms.Navigation) bool {
		return n.Flash == constvars.LogoutSuccessMessage
	})).Return(nil)

	rec := httptest.NewRecorder()
	fx.controller.Logout(rec, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil), fx.session))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constvars.RouteLogin, rec.Header().Get(constvars.HeaderLocation))
}

func TestPresenter_MissingSession(t *testing.T) {
	fx := newAuthFixture(t)

	rec := httptest.NewRecorder()
	fx.controller.ShowLogin(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestPresenter_NotFound(t *testing.T) {
	fx := newAuthFixture(t)

	rec := httptest.NewRecorder()
	fx.controller.Presenter.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientPageNotFound)
}
