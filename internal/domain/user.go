package domain

import "time"

// User representa a entidade do usuário no sistema.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Roles conhecidas pelo sistema.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// HasRole informa se o usuário possui a role informada.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserRegistration representa o payload de entrada para o registro.
// Role é opcional; vazio significa ROLE_USER.
type UserRegistration struct {
	Email    string `json:"email" example:"admin@acme.com"`
	Password string `json:"password" example:"s3cr3t"`
	Role     string `json:"role,omitempty" example:"ROLE_USER"`
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email    string `json:"email" example:"admin@acme.com"`
	Password string `json:"password" example:"s3cr3t"`
}
