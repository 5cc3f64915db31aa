package auth

// Identity is a verified Firebase identity.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expires_in"`
	Admin     Identity `json:"admin"`
}
