package dto

// AuthClaims is the verified token payload placed on the request context.
type AuthClaims struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role"` // "student" or "admin"
	Expiry float64 `json:"-"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Passcode string `json:"passcode"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
