package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to estimate fund"`
	ErrorDetails string    `json:"error,omitempty" example:"holdings upstream unavailable"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err is optional; when set its message is exposed as ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so the response can travel through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
