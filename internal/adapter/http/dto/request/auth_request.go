package request

// SignUpRequest creates a new account. Role defaults to viewer when omitted.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SwitchRoleRequest changes the signed-in user's role. Role switching is a
// supported runtime scenario, not an admin-only backdoor.
type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
