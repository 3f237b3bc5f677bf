package models

import (
	"github.com/goccy/go-json"
)

// Session is the record written on login and read by every page that needs
// the current user. Fields keeps the whole backend payload so that writing it
// back is lossless.
type Session struct {
	Username string
	Name     string
	Role     Role
	Fields   map[string]interface{}
}

// DisplayName falls back to the username when the backend sent no name.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}

func (s Session) MarshalJSON() ([]byte, error) {
	record := make(map[string]interface{}, len(s.Fields)+3)
	for key, value := range s.Fields {
		record[key] = value
	}
	if s.Username != "" {
		record["username"] = s.Username
	}
	if s.Name != "" {
		record["name"] = s.Name
	}
	if s.Role != RoleUnknown {
		record["role"] = string(s.Role)
	}
	return json.Marshal(record)
}

func (s *Session) UnmarshalJSON(data []byte) error {
	record := make(map[string]interface{})
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	username, _ := record["username"].(string)
	name, _ := record["name"].(string)
	role, _ := record["role"].(string)

	s.Username = username
	s.Name = name
	s.Role = ParseRole(role)
	s.Fields = record
	return nil
}
