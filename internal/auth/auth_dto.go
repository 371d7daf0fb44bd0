package auth

import (
	"go-jewel-storefront/internal/pkg/flex"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"
)

// Kind selects the backend login endpoint.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindStaff    Kind = "staff"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,len=10,numeric"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// State is what the storefront knows about who is signed in.
type State struct {
	User          *session.User `json:"user"`
	Authenticated bool          `json:"authenticated"`
	// Stale is set when the backend could not be reached and the persisted
	// user is shown as-is.
	Stale bool `json:"stale,omitempty"`

	Notices notify.List `json:"-"`
}

func stateOf(u *session.User) State {
	return State{User: u, Authenticated: u != nil}
}

type ActionStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	Notices notify.List `json:"-"`
}

type rawUser struct {
	ID          flex.String `json:"Id"`
	IDLower     flex.String `json:"id"`
	CustID      flex.String `json:"CustId"`
	CustIDLower flex.String `json:"custId"`
	Name        string      `json:"Name"`
	NameLower   string      `json:"name"`
	Email       string      `json:"Email"`
	EmailLower  string      `json:"email"`
	Phone       flex.String `json:"Phone"`
	PhoneLower  flex.String `json:"phone"`
	Role        string      `json:"role"`
}

func (r rawUser) normalize() session.User {
	return session.User{
		ID:     string(flex.First(r.ID, r.IDLower)),
		CustID: string(flex.First(r.CustID, r.CustIDLower)),
		Name:   flex.First(r.Name, r.NameLower),
		Email:  flex.First(r.Email, r.EmailLower),
		Phone:  string(flex.First(r.Phone, r.PhoneLower)),
		Role:   r.Role,
	}
}

// loginResponse accepts both {token, user} and {data: {token, user}}.
type loginResponse struct {
	Success *bool   `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    rawUser `json:"user"`
	Data    struct {
		Token string  `json:"token"`
		User  rawUser `json:"user"`
	} `json:"data"`
}

func (r loginResponse) ok() bool {
	return r.Success == nil || *r.Success
}

func (r loginResponse) session() (string, session.User) {
	if r.Token != "" {
		return r.Token, r.User.normalize()
	}
	return r.Data.Token, r.Data.User.normalize()
}
