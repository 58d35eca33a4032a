package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email         string  `json:"email" binding:"required,email" example:"ana.perez@uni.edu"`
	Password      string  `json:"password" binding:"required,min=8" example:"secret-password"`
	FirstName     string  `json:"firstName" binding:"required" example:"Ana"`
	LastName      string  `json:"lastName" binding:"required" example:"Pérez"`
	StudentNumber *string `json:"studentNumber,omitempty" example:"2021114455"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana.perez@uni.edu"`
	Password string `json:"password" binding:"required" example:"secret-password"`
}

// TokenResponse carries the issued JWT after register/login.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
	TokenType   string `json:"tokenType" example:"Bearer"`
}
