package domain

import (
	"errors"
	"time"
)

// Role is the access level carried by a client account. The wire
// representation stays a plain string for compatibility with the stored
// accounts and the token claims.
type Role string

const (
	RoleRegular    Role = "REGULAR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRegular, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrLoginThrottled = errors.New("too many login attempts")
var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")
var ErrForbidden = errors.New("access forbidden")
var ErrCompanyRequired = errors.New("company id is required")
var ErrInvalidRole = errors.New("invalid role")

// Client is an account holder: an employee of a company (tenant) or a
// SUPER_ADMIN operator that is not bound to any company.
type Client struct {
	ID           string     `json:"idCliente" bson:"_id,omitempty"`
	CompanyID    *string    `json:"idEmpresa,omitempty" bson:"id_empresa,omitempty"`
	Name         string     `json:"nome" bson:"nome"`
	Email        string     `json:"email" bson:"email"`
	Phone        string     `json:"telefone,omitempty" bson:"telefone,omitempty"`
	CPF          string     `json:"cpf" bson:"cpf"`
	BirthDate    *time.Time `json:"dataNascimento,omitempty" bson:"data_nascimento,omitempty"`
	Position     string     `json:"cargo,omitempty" bson:"cargo,omitempty"`
	Department   string     `json:"departamento,omitempty" bson:"departamento,omitempty"`
	Role         Role       `json:"role" bson:"role"`
	PasswordHash string     `json:"-" bson:"senha"`
	CreatedAt    time.Time  `json:"dataCadastro" bson:"data_cadastro"`
	Active       bool       `json:"ativo" bson:"ativo"`
}

// TenantScoped reports whether the account is bound to a company.
// SUPER_ADMIN accounts are global and carry no company id.
func (c *Client) TenantScoped() bool {
	return c.Role != RoleSuperAdmin
}
