package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/esportivai/backend/services"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// GetClaimsFromContext returns the token claims attached by Authenticate.
func GetClaimsFromContext(ctx context.Context) (*services.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*services.Claims)
	if !ok {
		return nil, errors.New("token claims not found in context")
	}
	return claims, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
