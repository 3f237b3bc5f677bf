package backend

import (
	"context"
	"io"
	"medibook-web/internal/app/config"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *backendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewBackendClient(&config.InternalConfig{
		Backend: config.AppBackend{
			BaseUrl:                 server.URL + "/",
			RequestTimeoutInSeconds: 5,
			MaxRequestsPerSecond:    100,
			Burst:                   10,
		},
	}, zap.NewNop())
	return client.(*backendClient)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestBackendClient_Register(t *testing.T) {
	t.Run("Sends Registration Payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, constvars.BackendPathRegister, r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, map[string]string{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "secret1",
				"role":     "PATIENT",
			}, payload)

			writeJSON(w, http.StatusCreated, `{"id":1}`)
		})

		result := client.Register(context.Background(), &requests.RegisterUser{
			Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "PATIENT",
		})

		assert.True(t, result.OK)
	})

	t.Run("Surfaces Message Field", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, `{"message":"Username already exists"}`)
		})

		result := client.Register(context.Background(), &requests.RegisterUser{Username: "alice"})

		assert.False(t, result.OK)
		assert.Equal(t, "Username already exists", result.Error)
	})

	t.Run("Reads Message Even When Error Is Present", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, `{"error":"Conflict","message":"Username already taken"}`)
		})

		result := client.Register(context.Background(), &requests.RegisterUser{Username: "alice"})

		assert.False(t, result.OK)
		assert.Equal(t, "Username already taken", result.Error)
	})

	t.Run("Ignores Error Field", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":"Bad Request"}`)
		})

		result := client.Register(context.Background(), &requests.RegisterUser{Username: "alice"})

		assert.False(t, result.OK)
		assert.Empty(t, result.Error)
	})
}

func TestBackendClient_Login(t *testing.T) {
	t.Run("Success Keeps Whole User Object", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"username":"drwho","name":"Dr Who","role":"DOCTOR","token":"abc"}`)
		})

		result := client.Login(context.Background(), &requests.LoginUser{Username: "drwho", Password: "secret1"})

		require.True(t, result.OK)
		assert.Equal(t, "Dr Who", result.Value.Name)
		assert.Equal(t, "DOCTOR", result.Value.Role)
		assert.Equal(t, "abc", result.Value.Fields["token"])
	})

	t.Run("Surfaces Error Field", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Invalid credentials"}`)
		})

		result := client.Login(context.Background(), &requests.LoginUser{Username: "drwho", Password: "wrong1"})

		assert.False(t, result.OK)
		assert.Equal(t, "Invalid credentials", result.Error)
	})

	t.Run("Message Only Body Has No Server Text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Bad credentials"}`)
		})

		result := client.Login(context.Background(), &requests.LoginUser{Username: "drwho", Password: "wrong1"})

		assert.False(t, result.OK)
		assert.Empty(t, result.Error)
	})

	t.Run("Non JSON Failure Has No Server Text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, "<html>Internal Server Error</html>")
		})

		result := client.Login(context.Background(), &requests.LoginUser{Username: "drwho", Password: "secret1"})

		assert.False(t, result.OK)
		assert.Empty(t, result.Error)
	})

	t.Run("Forwards Request ID", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "MDBK_WEB_test", r.Header.Get(constvars.HeaderXRequestID))
			writeJSON(w, http.StatusOK, `{"role":"PATIENT"}`)
		})

		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "MDBK_WEB_test")
		result := client.Login(ctx, &requests.LoginUser{Username: "alice", Password: "secret1"})
		assert.True(t, result.OK)
	})
}

func TestBackendClient_ForgotPassword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, constvars.BackendPathForgotPassword, r.URL.Path)
		assert.Equal(t, "alice+test@example.com", r.URL.Query().Get("email"))

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body, "forgot password sends no body")
		assert.Empty(t, r.Header.Get(constvars.HeaderContentType))

		writeJSON(w, http.StatusOK, `"Reset token sent to your email"`)
	})

	result := client.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "alice+test@example.com"})

	require.True(t, result.OK)
	assert.Equal(t, "Reset token sent to your email", result.Value.Message)
}

func TestBackendClient_ForgotPasswordFailureReadsErrorField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"No such user"}`)
	})

	result := client.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "bob@example.com"})

	assert.False(t, result.OK)
	assert.Empty(t, result.Error)
}

func TestBackendClient_Appointments(t *testing.T) {
	t.Run("List Accepts Wrapped Data", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "drwho", r.URL.Query().Get("username"))
			assert.Equal(t, "DOCTOR", r.URL.Query().Get("role"))
			writeJSON(w, http.StatusOK, `{"data":[{"id":"42","doctorUsername":"drwho","patientUsername":"alice","date":"2030-01-01","time":"09:00"}]}`)
		})

		result := client.ListAppointments(context.Background(), &requests.ListAppointments{Username: "drwho", Role: "DOCTOR"})

		require.True(t, result.OK)
		assert.Equal(t, []responses.Appointment{{ID: "42", DoctorUsername: "drwho", PatientUsername: "alice", Date: "2030-01-01", Time: "09:00"}}, result.Value)
	})

	t.Run("List Empty Body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		result := client.ListAppointments(context.Background(), &requests.ListAppointments{})

		require.True(t, result.OK)
		assert.Empty(t, result.Value)
	})

	t.Run("Update Targets Appointment", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/appointments/42", r.URL.Path)

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.NotContains(t, payload, "appointmentId", "the id travels in the path only")
			assert.Equal(t, "10:30", payload["time"])
			w.WriteHeader(http.StatusNoContent)
		})

		result := client.UpdateAppointment(context.Background(), &requests.UpdateAppointment{AppointmentID: "42", Date: "2030-01-02", Time: "10:30"})
		assert.True(t, result.OK)
	})

	t.Run("Cancel Sends Reason As Query", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/appointments/42", r.URL.Path)
			assert.Equal(t, "feeling better", r.URL.Query().Get("reason"))
			writeJSON(w, http.StatusOK, `{"message":"Appointment cancelled"}`)
		})

		result := client.CancelAppointment(context.Background(), &requests.CancelAppointment{AppointmentID: "42", Reason: "feeling better"})

		require.True(t, result.OK)
		assert.Equal(t, "Appointment cancelled", result.Value.Message)
	})
}

func TestBackendClient_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := client.CreatePayment(ctx, &requests.CreatePayment{AppointmentID: "42", Amount: 10, Method: "CASH"})

	assert.False(t, result.OK)
	assert.Empty(t, result.Error)
}

func TestExtractErrorText(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"error field", `{"error":"Invalid credentials"}`, "", "Invalid credentials"},
		{"message field", `{"message":"Email taken"}`, "", "Email taken"},
		{"error wins over message", `{"error":"A","message":"B"}`, "", "A"},
		{"blank error falls to message", `{"error":"  ","message":"B"}`, "", "B"},
		{"json string", `"Token expired"`, "", "Token expired"},
		{"no known field", `{"status":500}`, "", ""},
		{"plain text", `Bad Gateway`, "", ""},
		{"empty", ``, "", ""},
		{"named field only", `{"error":"A","message":"B"}`, "message", "B"},
		{"named field missing", `{"message":"B"}`, "error", ""},
		{"named field skips json string", `"Token expired"`, "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractErrorText([]byte(tt.body), tt.field))
		})
	}
}
