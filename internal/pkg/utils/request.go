package utils

import (
	"net/http"
	"net/url"

	"github.com/go-playground/form/v4"
)

var formDecoder = form.NewDecoder()

// DecodeForm fills dst from the posted form. Values that fail to convert
// are left zero so that validation reports them.
func DecodeForm(r *http.Request, dst interface{}) (url.Values, error) {
	err := r.ParseForm()
	if err != nil {
		return nil, err
	}

	_ = formDecoder.Decode(dst, r.PostForm)
	return r.PostForm, nil
}

// FormValues copies the submitted values for re-rendering, skipping secrets.
func FormValues(values url.Values, secretFields ...string) map[string]string {
	skip := make(map[string]bool, len(secretFields))
	for _, field := range secretFields {
		skip[field] = true
	}

	result := make(map[string]string, len(values))
	for key := range values {
		if skip[key] {
			continue
		}
		result[key] = values.Get(key)
	}
	return result
}
