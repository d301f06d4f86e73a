package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       Role       `json:"role_id"`
	SupervisorID *int       `json:"supervisor_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	Lastname     *string `json:"lastname"`
	Email        *string `json:"email"`
	Active       *bool   `json:"active"`
	RoleID       *Role   `json:"role_id"`
	SupervisorID *int    `json:"supervisor_id"`
	Deleted      *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   Role
	jwt.RegisteredClaims
}

// Principal é a visão mínima do usuário autenticado usada pelas regras de negócio
type Principal struct {
	ID   int
	Role Role
}

// PrincipalFromClaims extrai o principal das claims do token
func PrincipalFromClaims(claims *Claims) Principal {
	return Principal{
		ID:   claims.UserID,
		Role: claims.UserRoleID,
	}
}
