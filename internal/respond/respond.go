package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/common"
	appmiddleware "github.com/mockmart/catalog-api/internal/middleware"
)

const (
	msgValidationError = "validation.error"
	msgInternalError   = "internal.server.error"
	msgNotFound        = "Not Found"
	msgMethodNotAllow  = "Method Not Allowed"
)

var installOnce sync.Once

// Install routes every Huma error through the flat ErrorResponse shape, so
// schema validation failures and handler errors serialize identically.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(context.Background(), status, msg, errs...)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return statusError(goCtx, status, msg, errs...)
		}
	})
}

// Meta assembles response metadata from the request context. message follows
// the "<domain>.<action>.<status>" convention and code must match the HTTP
// status the pipeline sets.
func Meta(ctx context.Context, message, code string, pagination *api.Pagination) api.Meta {
	meta := api.Meta{
		Message:    message,
		Status:     api.StatusSuccess,
		Code:       code,
		Timestamp:  common.Now(),
		Additional: map[string]any{},
		Pagination: pagination,
	}
	if info := appmiddleware.InfoFromContext(ctx); info != nil {
		meta.TraceID = &info.TraceID
		meta.CorrelationID = &info.CorrelationID
		meta.RequestID = &info.RequestID
		meta.Method = &info.Method
		meta.Path = &info.Path
		meta.Host = &info.Host
		if info.Query != "" {
			meta.Query = &info.Query
		}
	}
	return meta
}

// Success wraps a payload for a 200 response.
func Success[T any](ctx context.Context, data T, message string) api.Envelope[T] {
	return api.NewEnvelope(data, Meta(ctx, message, "200", nil))
}

// Created wraps a payload for a 201 response.
func Created[T any](ctx context.Context, data T, message string) api.Envelope[T] {
	return api.NewEnvelope(data, Meta(ctx, message, "201", nil))
}

// Page wraps a list payload together with its pagination block.
func Page[T any](ctx context.Context, data T, message string, pagination api.Pagination) api.Envelope[T] {
	return api.NewEnvelope(data, Meta(ctx, message, "200", &pagination))
}

// WriteJSON serializes any body directly to the ResponseWriter.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(body)
}

// WriteError renders an ErrorResponse, logging according to severity.
// Explicit details are placed ahead of any derived from errs.
func WriteError(w http.ResponseWriter, ctx context.Context, status int, msg string, details []api.ErrorDetail, errs ...error) error {
	se := statusError(ctx, status, msg, errs...)
	body, ok := se.(*statusErrorBody)
	if !ok {
		return se
	}
	if len(details) > 0 {
		body.Errors = append(details, body.Errors...)
	}
	return WriteJSON(w, status, body.ErrorResponse)
}

// NotFoundHandler emits an ErrorResponse 404 for unrouted paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteError(w, r.Context(), http.StatusNotFound, msgNotFound, nil); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits an ErrorResponse 405.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteError(w, r.Context(), http.StatusMethodNotAllowed, msgMethodNotAllow, nil); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into opaque 500 ErrorResponses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					if writeErr := WriteError(w, r.Context(), http.StatusInternalServerError, "", nil, err); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusErrorBody adapts an ErrorResponse to Huma's StatusError so Huma
// serializes exactly the flat failure shape.
type statusErrorBody struct {
	api.ErrorResponse
	status int
}

func (e *statusErrorBody) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.status)
}

func (e *statusErrorBody) GetStatus() int {
	return e.status
}

func statusError(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	message := messageForStatus(status, msg)
	details := detailsFromErrors(errs)

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("message", message),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("errors", details))
	}
	logWithStatus(ctx, status, message, joinErrors(errs), fields...)

	// 5xx bodies stay opaque; the cause goes to the log only.
	if status >= http.StatusInternalServerError {
		details = nil
	}
	body := api.NewErrorResponse(status, message, common.Now(), details)
	return &statusErrorBody{ErrorResponse: body, status: status}
}

// requiredPropertyRe matches Huma's missing-required-property message so it
// can be normalized to the per-field contract shape.
var requiredPropertyRe = regexp.MustCompile(`^expected required property (\S+) to be present$`)

// detailsFromErrors converts Huma error details into the contract's
// {field, message} entries. Locations keep only the field path: the
// body/query/path segment is stripped, and a missing required property
// becomes {field: "<name>", message: "Field required"}.
func detailsFromErrors(errs []error) []api.ErrorDetail {
	if len(errs) == 0 {
		return nil
	}
	details := make([]api.ErrorDetail, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		entry := api.ErrorDetail{Message: err.Error()}
		if detailer, ok := err.(huma.ErrorDetailer); ok {
			if detail := detailer.ErrorDetail(); detail != nil {
				entry.Message = detail.Message
				entry.Field = fieldFromLocation(detail.Location)
			}
		}
		if m := requiredPropertyRe.FindStringSubmatch(entry.Message); m != nil {
			entry.Field = m[1]
			entry.Message = "Field required"
		}
		details = append(details, entry)
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func fieldFromLocation(location string) string {
	for _, prefix := range []string{"body", "query", "path"} {
		if location == prefix {
			return ""
		}
		if strings.HasPrefix(location, prefix+".") {
			return location[len(prefix)+1:]
		}
	}
	return location
}

// messageForStatus picks the contract message. Server errors always map to
// the fixed opaque message, whatever the caller passed.
func messageForStatus(status int, msg string) string {
	switch {
	case status == http.StatusUnprocessableEntity:
		return msgValidationError
	case status >= http.StatusInternalServerError:
		return msgInternalError
	case strings.TrimSpace(msg) != "":
		return msg
	default:
		return http.StatusText(status)
	}
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func logWithStatus(ctx context.Context, status int, msg string, err error, fields ...zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogInfo(ctx, msg, fields...)
	}
}
