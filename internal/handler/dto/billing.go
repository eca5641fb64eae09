// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// SendNoticeRequest represents the request body for dispatching a notice.
type SendNoticeRequest struct {
	UserID string `json:"user_id"`
}

// SendNoticeResponse represents the non-error outcome of a billing request.
// Success is false when the user has no active order.
type SendNoticeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorDetail carries the machine code and human message for a failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for structured errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
