package httpdto

// MessageResponse is the generic success body `{message}`.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure body `{error}`; the provider error
// is surfaced to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GeneralResponse carries deliberately vague failure text under the
// `general` key.
type GeneralResponse struct {
	General string `json:"general"`
}
