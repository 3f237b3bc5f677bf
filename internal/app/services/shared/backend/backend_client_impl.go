package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxResponseBytes caps what is read from the backend per call.
const maxResponseBytes = 4 << 20

type backendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BackendClient {
	backendConfig := internalConfig.Backend
	return &backendClient{
		BaseUrl:    strings.TrimRight(backendConfig.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: backendConfig.RequestTimeout()},
		Limiter:    rate.NewLimiter(rate.Limit(backendConfig.MaxRequestsPerSecond), backendConfig.Burst),
		Log:        logger,
	}
}

type call struct {
	caller     string
	method     string
	path       string
	query      url.Values
	body       interface{}
	// errorField names the only failure body field read as server text.
	// Empty means the error field, then message, then a bare JSON string.
	errorField string
}

func (c call) url(baseUrl string) string {
	target := baseUrl + c.path
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}
	return target
}

// do runs one backend call. Transport and decode failures are logged and
// reported as a failure with no server text, so the form shows its fallback.
func do[T any](ctx context.Context, c *backendClient, op call, decode func(body []byte) (T, error)) responses.Result[T] {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info(op.caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, op.method),
		zap.String(constvars.LoggingBackendPathKey, op.path),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		c.logFailure(op.caller+" error waiting for rate limiter", requestID, exceptions.ErrBackendRateLimiterWait(err))
		return responses.Fail[T]("")
	}

	var body io.Reader
	if op.body != nil {
		payload, err := json.Marshal(op.body)
		if err != nil {
			c.logFailure(op.caller+" error marshaling request body", requestID, exceptions.ErrCannotMarshalJSON(err))
			return responses.Fail[T]("")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, op.url(c.BaseUrl), body)
	if err != nil {
		c.logFailure(op.caller+" error creating HTTP request", requestID, exceptions.ErrCreateHTTPRequest(err))
		return responses.Fail[T]("")
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logFailure(op.caller+" backend deadline exceeded", requestID, exceptions.ErrServerDeadlineExceeded(err))
		} else {
			c.logFailure(op.caller+" error sending HTTP request", requestID, exceptions.ErrSendHTTPRequest(err))
		}
		return responses.Fail[T]("")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logFailure(op.caller+" error reading response body", requestID, exceptions.ErrReadHTTPResponse(err))
		return responses.Fail[T]("")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverText := ExtractErrorText(responseBody, op.errorField)
		c.Log.Warn(op.caller+" backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(exceptions.ErrBackendRejected(op.method, op.path, resp.StatusCode)),
		)
		return responses.Fail[T](serverText)
	}

	value, err := decode(responseBody)
	if err != nil {
		c.logFailure(op.caller+" error decoding response", requestID, exceptions.ErrCannotParseJSON(err))
		return responses.Fail[T]("")
	}

	c.Log.Info(op.caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLength, len(responseBody)),
	)
	return responses.Ok(value)
}

func (c *backendClient) logFailure(message, requestID string, err error) {
	c.Log.Error(message,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
}

// ExtractErrorText pulls the human readable reason out of a failure body.
// With a field name only that field is read. Without one it tries the error
// field, then the message field, then a bare JSON string.
func ExtractErrorText(body []byte, field string) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	fields := []string{constvars.BackendErrorField, constvars.BackendMessageField}
	if field != "" {
		fields = []string{field}
	}

	var object map[string]interface{}
	if err := json.Unmarshal(trimmed, &object); err == nil {
		for _, name := range fields {
			if text, ok := object[name].(string); ok && strings.TrimSpace(text) != "" {
				return text
			}
		}
		return ""
	}

	if field != "" {
		return ""
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return strings.TrimSpace(text)
	}
	return ""
}

func decodeAck(body []byte) (responses.Ack, error) {
	var ack responses.Ack
	err := ack.DecodeBody(body)
	return ack, err
}

func decodeLoginUser(body []byte) (responses.LoginUser, error) {
	var user responses.LoginUser
	err := user.DecodeBody(body)
	return user, err
}

// decodeList accepts a bare array or an object wrapping it under data.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	items := make([]T, 0)
	if len(trimmed) == 0 {
		return items, nil
	}

	if trimmed[0] == '{' {
		var wrapped struct {
			Data []T `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Data != nil {
			items = wrapped.Data
		}
		return items, nil
	}

	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}
	return items, nil
}
