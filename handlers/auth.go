package handlers

import (
	"context"
	"net/http"
	"strings"

	"masterboxer.com/project-micro-social/services"
)

type contextKey string

const usernameKey contextKey = "username"

// WithUsername returns a copy of ctx carrying the signed-in username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// CurrentUsername is the user the request's session token was issued for,
// or "" for anonymous requests.
func CurrentUsername(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireSession rejects requests without a valid bearer token.
func RequireSession(sessions *services.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Missing session token", http.StatusUnauthorized)
				return
			}
			username, err := sessions.Parse(token)
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}

// OptionalSession attaches the username when a token is sent but lets
// anonymous requests through. A token that does not parse is still rejected.
func OptionalSession(sessions *services.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			username, err := sessions.Parse(token)
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}
