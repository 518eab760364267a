package usecase

import (
	"context"
	"errors"
	"strings"

	"salesdash/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase handles the login exchange against the remote auth endpoint
// and the lifecycle of the stored bearer token.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) error
	Logout()
}

type AuthUseCase struct {
	gateway interfaces.IAuthGateway
	tokens  interfaces.ITokenStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IAuthGateway, tokens interfaces.ITokenStore) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	token, err := u.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	u.tokens.SetToken(token)
	return nil
}

func (u *AuthUseCase) Logout() {
	u.tokens.Clear()
}
