package http

// ErrorResponse is the uniform error body. It never carries provider
// payloads or internal error text.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
