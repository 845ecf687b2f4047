package auth

import (
	"context"
)

// AuthService is the thin identity surface of the console. It exists to
// stamp audit fields with who acted; credential lifecycle beyond login is
// out of scope.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
