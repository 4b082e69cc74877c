// Package models defines the client-side views of server-owned entities:
// users, projects, structural models, analysis jobs and their results.
// All types mirror the JSON shapes of the platform API.
package models

import "time"

// User is the authenticated account as reported by /api/auth/me.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	IsSuperuser bool       `json:"is_superuser"`
	IsVerified  bool       `json:"is_verified"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// TokenResponse is the body of a successful POST /api/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
