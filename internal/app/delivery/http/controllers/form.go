package controllers

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/forms"
	"medibook-web/internal/pkg/utils"
	"net/http"
)

type submitFunc[T any] func(ctx context.Context, session contracts.SessionContext, state *forms.State, request *T) *forms.State

// pageForm is one page that renders a form on GET and submits it on POST.
type pageForm[T any] struct {
	page  string
	title string
	form  string
	// prefill lists query parameters copied into the form on GET.
	prefill []string
	// secret fields are never echoed back into the page.
	secret []string
}

func (pf pageForm[T]) show(p *Presenter, w http.ResponseWriter, r *http.Request) {
	session, ok := p.Session(w, r)
	if !ok {
		return
	}

	values := make(map[string]string, len(pf.prefill))
	query := r.URL.Query()
	for _, key := range pf.prefill {
		if value := query.Get(key); value != "" {
			values[key] = value
		}
	}
	p.Show(w, r, session, pf.page, pf.title, forms.NewState(pf.form, values))
}

func (pf pageForm[T]) submit(p *Presenter, w http.ResponseWriter, r *http.Request, submit submitFunc[T]) {
	session, ok := p.Session(w, r)
	if !ok {
		return
	}

	request := new(T)
	values, err := utils.DecodeForm(r, request)
	if err != nil {
		p.Fail(w, r, exceptions.ErrCannotParseForm(err))
		return
	}

	state := forms.NewState(pf.form, utils.FormValues(values, pf.secret...))
	state = submit(r.Context(), session, state, request)
	p.Respond(w, r, session, pf.page, pf.title, state)
}
