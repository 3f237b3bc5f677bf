package utils

import (
	"errors"
	"fmt"
	"html"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// LogError writes the dev message and every recorded location of err.
func LogError(log *zap.Logger, requestID string, err error) (int, string) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error(), zap.String(constvars.LoggingRequestIDKey, requestID))
	}
	return code, clientMessage
}

// BuildErrorResponse is the last-resort error page, used when templates are
// unavailable or rendering itself failed.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, requestID string, err error) {
	code, clientMessage := LogError(log, requestID, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(code)
	fmt.Fprintf(w, "<!doctype html><title>Error</title><h1>Error %d</h1><p>%s</p><p><a href=\"%s\">Home</a></p>",
		code, html.EscapeString(clientMessage), constvars.RouteHome)
}
