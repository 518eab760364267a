package interfaces

import "context"

//go:generate mockgen -source=auth_interface.go -destination=mocks/auth_mock.go -package=mock_interfaces

// IAuthGateway exchanges user credentials for a bearer token at the remote
// auth endpoint.
type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

// ITokenStore holds the bearer token attached to authenticated sales API
// requests. Token returns "" when nobody is logged in.
type ITokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}
