package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"linkgap/internal/config"
	"linkgap/pkg/domain"
	"linkgap/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SecHandlerOptions configure bearer-token authentication for the v1 API.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	// When empty, authentication is disabled entirely.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type contextKey string

// UserIDKey is the context key under which the authenticated user's ID is stored.
const UserIDKey contextKey = "userID"

// SecHandler validates RS256 bearer tokens on v1 routes.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key. A nil key disables
// authentication; Middleware then passes requests through unchanged.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth validates the token and returns a context carrying the
// authenticated user's ID. Only RSA-family signing methods are accepted; a
// token signed with anything else (notably HS256 with the public key as the
// HMAC secret) is rejected.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.publicKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware enforces bearer authentication on every wrapped route.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.publicKey == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user's ID, or the zero ID
// when authentication is disabled.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if v, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return v
	}

	return domain.UserID{}
}
