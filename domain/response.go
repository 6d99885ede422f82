package domain

// Response is the envelope every endpoint returns: a success flag, a
// human-readable message, the payload on success, and an optional list of
// detail strings on failure. Failures cross the service boundary as values
// of this shape, never as panics.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// SuccessResponse builds a success envelope
func SuccessResponse(data any, message string) Response {
	return Response{Success: true, Message: message, Data: data}
}

// FailureResponse builds a failure envelope
func FailureResponse(message string, details ...string) Response {
	return Response{Success: false, Message: message, Errors: details}
}
