package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
// Campos con forma estática y validadores declarativos; Phone y Address son opcionales.
type RegisterRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone,omitempty" form:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address,omitempty" form:"address" validate:"omitempty,max=300"`
}

// RegisterForm entrada del formulario de registro: RegisterRequest más la
// confirmación de password, que se compara antes de tocar el use case.
type RegisterForm struct {
	RegisterRequest
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para verificación de credenciales.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
