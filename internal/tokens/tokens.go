package tokens

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"croner/backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingSubject = errors.New("missing subject id")
	ErrInvalidToken   = errors.New("invalid token")
)

type ctxKey struct{}

// Handler issues and verifies the short-lived HMAC tokens attached to every
// successful response. It holds no state beyond the signing secret and the
// validity window, both fixed at process start.
type Handler struct {
	Secret string
	TTL    time.Duration
}

func New(secret string, ttl time.Duration) *Handler {
	return &Handler{Secret: secret, TTL: ttl}
}

// GenerateToken mints a signed credential binding the subject id to an
// issue/expiry window.
func (h *Handler) GenerateToken(subjectID string) (string, error) {
	if utils.IsBlank(subjectID) {
		return "", ErrMissingSubject
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"iat":     now.Unix(),
		"exp":     now.Add(h.TTL).Unix(),
		"jti":     uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Secret))
}

// Verify parses a raw token string and returns the subject id it carries.
func (h *Handler) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(h.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	subject, ok := claims["user_id"].(string)
	if !ok || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// Validate gates a route behind a bearer token. A missing or malformed
// header is 401; any verification failure, signature or expiry alike, is
// reported as 403 "Token expired". On success the verified subject id is
// stashed in the request context and the request proceeds.
func (h *Handler) Validate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.Fail(w, http.StatusUnauthorized, "Token missing")
			return
		}

		subject, err := h.Verify(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			utils.Fail(w, http.StatusForbidden, "Token expired")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the identity injected by Validate, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ctxKey{}).(string)
	return subject, ok
}
