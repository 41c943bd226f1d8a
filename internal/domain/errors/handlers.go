package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CSRF_MISMATCH"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope shared by success and error payloads
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`

	// RedirectTo is the "return home" affordance attached to recoverable auth failures
	RedirectTo string `json:"redirectTo,omitempty"`
}
