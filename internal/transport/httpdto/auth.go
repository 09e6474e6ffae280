package httpdto

// SignupRequest is used for POST /signup
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	Handle          string `json:"handle"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful signup or login
type TokenResponse struct {
	Token string `json:"token"`
}
