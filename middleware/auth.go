package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/esportivai/backend/services"
	"github.com/go-chi/chi/v5"
)

// Authenticate extracts the bearer token, verifies it and attaches the
// decoded claims to the request context. A missing token is rejected as
// unauthenticated (401); an invalid or expired one as forbidden (403).
func Authenticate(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 {
				writeError(w, http.StatusUnauthorized, "token not provided")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				writeError(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSameUser compares the authenticated user against the userId URL
// parameter. It proves the caller is acting as user X, nothing more: the
// event's stored organizer field is deliberately not consulted.
func RequireSameUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := GetClaimsFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "token not provided")
			return
		}

		userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
		if err != nil || claims.UserID != userID {
			writeError(w, http.StatusForbidden, "access denied: you are not the organizer of this event")
			return
		}

		next.ServeHTTP(w, r)
	})
}
