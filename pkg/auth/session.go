package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// ContextDealerID carries the acting dealer's ID, when the session resolved one.
const ContextDealerID contextKey = "dealer_id"

// Session extracts the dealer identity from a bearer token and stores it in the
// request context. An absent or invalid token does not reject the request: the
// share and history paths proceed with an empty identity and degrade on their
// own.
func Session(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dealerID := dealerIDFromToken(r, secret, logger)
			if dealerID != "" {
				ctx := context.WithValue(r.Context(), ContextDealerID, dealerID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// DealerID returns the acting dealer's ID, or "" when unauthenticated.
func DealerID(ctx context.Context) string {
	dealerID, _ := ctx.Value(ContextDealerID).(string)
	return dealerID
}

func dealerIDFromToken(r *http.Request, secret string, logger *zap.Logger) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		logger.Debug("session token rejected", zap.Error(err))
		return ""
	}

	if dealerID, ok := claims["dealer_id"].(string); ok && dealerID != "" {
		return dealerID
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
