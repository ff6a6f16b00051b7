package auth

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// RegisterRequest is the input of a signup.
type RegisterRequest struct {
	Email       string
	Password    string
	Name        string
	AccountName string
	// InviteToken, when set, joins the inviting account instead of creating a new one.
	InviteToken string
}

// Session is an issued login token.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Authenticator interface {
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate verifies a bearer token and loads its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
