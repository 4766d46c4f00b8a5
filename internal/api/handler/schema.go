package handler

// errorResponse documents the error envelope rendered by the central
// HTTP error handler; referenced by the swagger annotations.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
