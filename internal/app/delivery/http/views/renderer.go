// Package views renders the server-side HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/forms"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

const (
	PageHome              = "home"
	PageRegister          = "register"
	PageVerifyEmail       = "verify_email"
	PageLogin             = "login"
	PageForgotPassword    = "forgot_password"
	PageResetPassword     = "reset_password"
	PageDoctorDashboard   = "doctor_dashboard"
	PagePatientDashboard  = "patient_dashboard"
	PageAdminDashboard    = "admin_dashboard"
	PageAvailability      = "availability"
	PageAppointments      = "appointments"
	PageDoctorProfile     = "doctor_profile"
	PageAddPatient        = "add_patient"
	PageMakeAppointment   = "make_appointment"
	PageViewDoctors       = "view_doctors"
	PageUpdateAppointment = "update_appointment"
	PageCancelAppointment = "cancel_appointment"
	PagePayments          = "payments"
	PageError             = "error"
)

// Page is the data every template receives. Form is nil on pages without one.
type Page struct {
	Title     string
	Flash     string
	User      *models.Session
	Form      *forms.State
	RequestID string
}

type Renderer struct {
	pages map[string]*template.Template
	Log   *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html", file)
		if err != nil {
			return nil, exceptions.ErrTemplateRender(err, name)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		Log:   logger,
	}, nil
}

// Render executes page into a buffer first so that a template error never
// leaves a half-written response behind.
func (rd *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data Page) error {
	tmpl, ok := rd.pages[page]
	if !ok {
		return exceptions.ErrTemplateNotFound(page)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		return exceptions.ErrTemplateRender(err, page)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	if err != nil {
		rd.Log.Warn("Renderer.Render failed to write response",
			zap.String(constvars.LoggingRequestIDKey, data.RequestID),
			zap.String("page", page),
			zap.Error(err),
		)
	}
	return nil
}
