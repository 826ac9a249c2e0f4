package dto

// SuccessResponse is the plain success envelope used by the page scripts.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the plain error envelope used by the page scripts. The
// error field carries either a machine code (attendance endpoints) or a
// user-facing message (auth/admin endpoints).
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewSuccessResponse creates a success envelope with an optional message.
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(code string) ErrorResponse {
	return ErrorResponse{Error: code}
}
