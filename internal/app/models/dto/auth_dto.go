package dto

// LoginRequest represents the login payload
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required" example:"U2345123F"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginResponse carries the issued token and basic user info
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
