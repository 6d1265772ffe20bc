package errors

// ErrorResponse is the JSON envelope every failed request returns. Success
// is always false; it exists so clients can branch on one field.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the client-facing message plus any reportable details
// attached by the error builder (conflicting rental ids, field violations).
// Display comes from the error's hints, never from internal error text.
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
