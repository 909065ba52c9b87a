package api

import (
	"context"
	"net/http"

	"finboard/internal/core"
)

type authGateway struct{ c *Client }

func (g *authGateway) Register(ctx context.Context, cr core.Credentials) (core.AuthResult, error) {
	return call[core.AuthResult](ctx, g.c, request{
		method: http.MethodPost, path: "/auth/register", body: cr, auth: authNone,
	})
}

func (g *authGateway) Login(ctx context.Context, cr core.Credentials) (core.AuthResult, error) {
	body := core.Credentials{Email: cr.Email, Password: cr.Password}
	return call[core.AuthResult](ctx, g.c, request{
		method: http.MethodPost, path: "/auth/login", body: body, auth: authNone,
	})
}

func (g *authGateway) Me(ctx context.Context) (core.User, error) {
	return call[core.User](ctx, g.c, request{method: http.MethodGet, path: "/auth/me"})
}

func (g *authGateway) Logout(ctx context.Context, token string) error {
	return g.c.do(ctx, request{
		method: http.MethodPost, path: "/auth/logout", auth: authExplicit, token: token,
	}, nil)
}
