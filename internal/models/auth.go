package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// required: true
	// example: john_doe
	Username string `json:"username"`

	// required: true
	// example: Secret123!
	Password string `json:"password"`

	// required: true
	// example: John
	FirstName string `json:"firstName"`

	// required: true
	// example: Doe
	LastName string `json:"lastName"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// required: true
	// example: Secret123!
	Password string `json:"password"`
}

// AuthResponse is returned by successful registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	User *User `json:"user"`

	// Bearer token for the Authorization header
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	Token string `json:"token"`
}

// MessageResponse carries a human readable confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logged out successfully
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid credentials
	Error string `json:"error"`
}
