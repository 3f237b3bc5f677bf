package responses

import (
	"strings"

	"github.com/goccy/go-json"
)

// Ack is a success body the client only needs a message from. The backend
// answers with a bare JSON string, a plain text body or an object with a
// message field.
type Ack struct {
	Message string
}

func (a *Ack) DecodeBody(body []byte) error {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}

	var text string
	if err := json.Unmarshal([]byte(trimmed), &text); err == nil {
		a.Message = text
		return nil
	}

	var object map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &object); err == nil {
		if message, ok := object["message"].(string); ok {
			a.Message = message
		}
		return nil
	}

	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		a.Message = trimmed
	}
	return nil
}

// LoginUser keeps every field the backend returned next to the ones the
// client reads.
type LoginUser struct {
	Username string
	Name     string
	Role     string
	Fields   map[string]interface{}
}

func (u *LoginUser) DecodeBody(body []byte) error {
	fields := make(map[string]interface{})
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return err
		}
	}
	u.Fields = fields
	u.Username, _ = fields["username"].(string)
	u.Name, _ = fields["name"].(string)
	u.Role, _ = fields["role"].(string)
	return nil
}
