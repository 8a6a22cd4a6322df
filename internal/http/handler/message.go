package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the envelope every handler writes. Zero-valued fields are
// dropped from the encoded JSON.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
