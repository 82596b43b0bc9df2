package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// HouseholdKey is the context key for storing the authenticated household.
const HouseholdKey contextKey = "household"

// GetHousehold extracts the household from the context.
// Returns empty string if not found.
func GetHousehold(ctx context.Context) string {
	household, _ := ctx.Value(HouseholdKey).(string)
	return household
}

// WithHousehold returns a copy of ctx carrying household.
func WithHousehold(ctx context.Context, household string) context.Context {
	return context.WithValue(ctx, HouseholdKey, household)
}

// RequireAuth returns an interceptor that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the household to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithHousehold(ctx, claims.Household), req)
		}
	}
}
