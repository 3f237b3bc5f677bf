package views

import (
	"html/template"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/forms"
	"strings"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one input as the "field" partial draws it.
type Field struct {
	Name    string
	Label   string
	Kind    string
	Value   string
	Error   string
	Options []Option
	Busy    bool
}

type Submit struct {
	Label string
	Busy  bool
}

var templateFuncs = template.FuncMap{
	"field":      field,
	"choice":     choice,
	"submit":     submit,
	"roleChoice": roleChoice,
	"humanize":   humanize,
	"dashboard":  dashboard,
}

func field(state *forms.State, name, label, kind string) Field {
	f := Field{Name: name, Label: label, Kind: kind}
	if state == nil {
		return f
	}
	f.Error = state.Error(name)
	f.Busy = state.Busy
	if kind != "password" {
		f.Value = state.Value(name)
	}
	return f
}

// choice builds a select. The first option is selected when nothing was posted.
func choice(state *forms.State, name, label string, values ...string) Field {
	f := field(state, name, label, "select")
	if f.Value == "" && len(values) > 0 {
		f.Value = values[0]
	}
	for _, value := range values {
		f.Options = append(f.Options, Option{
			Value:    value,
			Label:    humanize(value),
			Selected: value == f.Value,
		})
	}
	return f
}

func submit(state *forms.State, label string) Submit {
	return Submit{Label: label, Busy: state != nil && state.Busy}
}

func roleChoice(state *forms.State) Field {
	values := make([]string, 0, len(models.RegistrationRoles))
	for _, role := range models.RegistrationRoles {
		values = append(values, role.String())
	}
	f := choice(state, "role", "Role", values...)
	for i := range f.Options {
		f.Options[i].Label = models.Role(f.Options[i].Value).Label()
	}
	return f
}

// humanize turns an enum value like "FEMALE" into "Female".
func humanize(value string) string {
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func dashboard(user *models.Session) string {
	if user == nil {
		return models.RoleUnknown.Dashboard()
	}
	return user.Role.Dashboard()
}
