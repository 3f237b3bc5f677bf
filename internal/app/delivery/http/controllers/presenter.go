package controllers

import (
	"context"
	"math"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/middlewares"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/forms"
	"medibook-web/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Presenter turns a form state into an HTTP response the same way for every
// page: render it, render it with 422 when fields failed, or navigate.
type Presenter struct {
	Log      *zap.Logger
	Renderer *views.Renderer
}

func NewPresenter(logger *zap.Logger, renderer *views.Renderer) *Presenter {
	return &Presenter{
		Log:      logger,
		Renderer: renderer,
	}
}

// Session returns the request's session context, or writes the error page.
func (p *Presenter) Session(w http.ResponseWriter, r *http.Request) (contracts.SessionContext, bool) {
	session, ok := middlewares.SessionFrom(r.Context())
	if !ok {
		p.Fail(w, r, exceptions.ErrServerProcess(nil))
		return nil, false
	}
	return session, true
}

// Show renders a page on GET. Navigation state left by the previous page
// prefills empty values and supplies the flash, then it is gone.
func (p *Presenter) Show(w http.ResponseWriter, r *http.Request, session contracts.SessionContext, page, title string, state *forms.State) {
	data := p.page(r.Context(), session, title, state)

	navigation, err := session.TakeNavigation(r.Context())
	if err != nil {
		p.Log.Warn("Presenter.Show failed to read navigation state",
			zap.String(constvars.LoggingRequestIDKey, data.RequestID),
			zap.Error(err),
		)
	}
	if navigation != nil {
		data.Flash = navigation.Flash
		if state != nil {
			for key, value := range navigation.State {
				if state.Values[key] == "" {
					state.Values[key] = value
				}
			}
		}
	}

	p.render(w, r, http.StatusOK, page, data)
}

// Respond writes the outcome of a POST.
func (p *Presenter) Respond(w http.ResponseWriter, r *http.Request, session contracts.SessionContext, page, title string, state *forms.State) {
	if state.Redirecting() {
		p.navigate(w, r, session, page, title, state)
		return
	}

	statusCode := http.StatusOK
	if state.HasErrors() {
		statusCode = http.StatusUnprocessableEntity
	}
	p.render(w, r, statusCode, page, p.page(r.Context(), session, title, state))
}

// Redirect stores navigation and answers with 303.
func (p *Presenter) Redirect(w http.ResponseWriter, r *http.Request, session contracts.SessionContext, navigation *forms.Navigation) {
	p.saveNavigation(r.Context(), session, navigation)
	http.Redirect(w, r, navigation.Path, http.StatusSeeOther)
}

// Fail logs err and renders the error page with its client message.
func (p *Presenter) Fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	statusCode, clientMessage := utils.LogError(p.Log, requestID, err)

	state := forms.NewState("", nil)
	state.Message = clientMessage
	renderErr := p.Renderer.Render(w, statusCode, views.PageError, views.Page{
		Title:     "Error",
		Form:      state,
		RequestID: requestID,
	})
	if renderErr != nil {
		utils.BuildErrorResponse(p.Log, w, requestID, renderErr)
	}
}

func (p *Presenter) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Fail(w, r, exceptions.ErrPageNotFound(r.URL.Path))
}

func (p *Presenter) navigate(w http.ResponseWriter, r *http.Request, session contracts.SessionContext, page, title string, state *forms.State) {
	navigation := *state.Redirect
	if navigation.Delay <= 0 {
		p.Redirect(w, r, session, &navigation)
		return
	}

	// The success message is already on this page, the destination only needs the state.
	navigation.Flash = ""
	p.saveNavigation(r.Context(), session, &navigation)

	seconds := int(math.Ceil(navigation.Delay.Seconds()))
	w.Header().Set(constvars.HeaderRefresh, strconv.Itoa(seconds)+"; url="+navigation.Path)
	p.render(w, r, http.StatusOK, page, p.page(r.Context(), session, title, state))
}

func (p *Presenter) saveNavigation(ctx context.Context, session contracts.SessionContext, navigation *forms.Navigation) {
	err := session.SaveNavigation(ctx, navigation)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		p.Log.Warn("Presenter failed to store navigation state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedirectKey, navigation.Path),
			zap.Error(err),
		)
	}
}

func (p *Presenter) page(ctx context.Context, session contracts.SessionContext, title string, state *forms.State) views.Page {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	user, err := session.Read(ctx)
	if err != nil {
		p.Log.Warn("Presenter failed to read session record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return views.Page{
		Title:     title,
		User:      user,
		Form:      state,
		RequestID: requestID,
	}
}

func (p *Presenter) render(w http.ResponseWriter, r *http.Request, statusCode int, page string, data views.Page) {
	err := p.Renderer.Render(w, statusCode, page, data)
	if err != nil {
		utils.BuildErrorResponse(p.Log, w, data.RequestID, err)
	}
}
