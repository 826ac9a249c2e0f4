package dto

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"correo" binding:"required,email" example:"alumno@uni.edu"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// SessionUser is the session identity exposed to the page scripts.
type SessionUser struct {
	ID       int64  `json:"id" example:"1"`
	FullName string `json:"nombre" example:"Ana Torres"`
	Email    string `json:"correo" example:"alumno@uni.edu"`
	Role     string `json:"tipo" example:"alumno" enums:"alumno,jefe,admin"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *SessionUser `json:"user"`
	Message string       `json:"message,omitempty"`
}

// SessionResponse reports the current session, if any.
type SessionResponse struct {
	User *SessionUser `json:"user"`
}
