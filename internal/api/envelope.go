package api

// Envelope is the standard success wrapper for every enveloped endpoint.
// data carries the payload (object, array, or null for "no content");
// it is never omitted. Errors use ErrorResponse instead, never this type.
type Envelope[T any] struct {
	Data *T   `json:"data"`
	Meta Meta `json:"meta"`
}

// Meta holds the request-scoped metadata attached to every success response.
// Field names and casing are a contract surface for clients.
type Meta struct {
	Message       string         `json:"message"`
	Status        string         `json:"status"`
	Code          string         `json:"code"`
	Timestamp     string         `json:"timestamp"`
	TraceID       *string        `json:"trace_id"`
	CorrelationID *string        `json:"correlation_id"`
	RequestID     *string        `json:"request_id"`
	Method        *string        `json:"method"`
	Path          *string        `json:"path"`
	Query         *string        `json:"query"`
	Host          *string        `json:"host"`
	Additional    map[string]any `json:"additional"`
	Pagination    *Pagination    `json:"pagination,omitempty"`
}

// StatusSuccess is the only value Meta.Status takes on the success path.
const StatusSuccess = "success"

// NewEnvelope constructs a success envelope, copying the payload so later
// mutation of the caller's value cannot change the serialized response.
func NewEnvelope[T any](data T, meta Meta) Envelope[T] {
	d := data
	if meta.Status == "" {
		meta.Status = StatusSuccess
	}
	if meta.Code == "" {
		meta.Code = "200"
	}
	if meta.Additional == nil {
		meta.Additional = map[string]any{}
	}
	return Envelope[T]{Data: &d, Meta: meta}
}

// ErrorDetail names a single violated constraint. Field is empty for
// failures that are not tied to a specific input field.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the flat failure body. It intentionally has no data/meta
// wrapper; clients branch on the HTTP status, not on body shape.
type ErrorResponse struct {
	Code      int           `json:"code"`
	Message   string        `json:"message"`
	Errors    []ErrorDetail `json:"errors"`
	Timestamp string        `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with a cloned, never-nil errors
// slice so the JSON field is always an array.
func NewErrorResponse(code int, message, timestamp string, details []ErrorDetail) ErrorResponse {
	cloned := make([]ErrorDetail, len(details))
	copy(cloned, details)
	return ErrorResponse{
		Code:      code,
		Message:   message,
		Errors:    cloned,
		Timestamp: timestamp,
	}
}
