package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rlwai/shop-api/internal/audit"
	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/httputil"
	"github.com/rlwai/shop-api/internal/service"
)

type contextKey string

const IdentityContextKey contextKey = "identity"

func GetIdentity(ctx context.Context) *service.Identity {
	if identity, ok := ctx.Value(IdentityContextKey).(*service.Identity); ok {
		return identity
	}
	return nil
}

func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

type TokenAuthenticator interface {
	Authenticate(token string) (*service.Identity, error)
}

type AuthMiddleware struct {
	sessions TokenAuthenticator
}

func NewAuthMiddleware(sessions TokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			m.reject(w, r, apperrors.MissingToken())
			return
		}

		identity, err := m.sessions.Authenticate(token)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	audit.LogFromRequest(r, audit.Event{
		Type: audit.EventAuthFailure,
		Details: map[string]interface{}{
			"code": string(apperrors.GetCode(err)),
			"path": r.URL.Path,
		},
	})
	httputil.WriteError(w, err)
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
