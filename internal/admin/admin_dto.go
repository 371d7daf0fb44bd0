package admin

import (
	"strings"

	"go-jewel-storefront/internal/pkg/flex"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a back-office account.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type rawUser struct {
	ID       flex.String `json:"Id"`
	IDLower  flex.String `json:"id"`
	UserID   flex.String `json:"UserId"`
	Name     string      `json:"Name"`
	UserName string      `json:"UserName"`
	Email    string      `json:"Email"`
	Role     string      `json:"Role"`
	IsActive *bool       `json:"IsActive"`
}

func (r rawUser) normalize() User {
	u := User{
		ID:     string(flex.First(r.ID, r.IDLower, r.UserID)),
		Name:   flex.First(r.Name, r.UserName),
		Email:  r.Email,
		Role:   strings.ToLower(r.Role),
		Active: true,
	}
	if r.IsActive != nil {
		u.Active = *r.IsActive
	}
	return u
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

// UpdateUserRequest leaves the password alone when it is empty.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
	Active   *bool  `json:"active"`
}

func normEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (r CreateUserRequest) trimmed() CreateUserRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normEmail(r.Email)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	return r
}

func (r UpdateUserRequest) trimmed() UpdateUserRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normEmail(r.Email)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	return r
}

type userBody struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password,omitempty"`
	Role     string `json:"Role"`
	IsActive *bool  `json:"IsActive,omitempty"`
}

func (r CreateUserRequest) body() userBody {
	return userBody{Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role}
}

func (r UpdateUserRequest) body() userBody {
	return userBody{Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role, IsActive: r.Active}
}
