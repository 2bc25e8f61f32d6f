package dto

// ErrorResponse is the envelope for all error responses.
// Success responses carry the resource payload directly, without a wrapper.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// DeletedResponse acknowledges a successful delete
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
