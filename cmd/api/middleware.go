package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"tenthouse/internal/auth"
	"tenthouse/internal/clientip"
)

type adminKey string

const adminCtx adminKey = "admin"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// the password is compared against a bcrypt hash from the env
			creds := strings.SplitN(string(decoded), ":", 2)
			if len(creds) != 2 || creds[0] != app.config.Auth.BasicUser ||
				!auth.CheckPassword(app.config.Auth.BasicPassHash, creds[1]) {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminTokenMiddleware accepts bearer access tokens carrying the admin role.
func (app *application) AdminTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
			return
		}

		jwtToken, err := app.authenticator.ValidateAccessToken(parts[1])
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		if auth.Role(jwtToken) != auth.RoleAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), adminCtx, auth.Subject(jwtToken))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getAdminFromContext(r *http.Request) string {
	admin, _ := r.Context().Value(adminCtx).(string)
	return admin
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.RateLimiter.Enabled && app.rateLimiter != nil {
			ip := clientip.FromRequest(r, app.config.TrustProxyHeaders)
			if allow, retryAfter := app.rateLimiter.Allow(ip); !allow {
				app.metrics.RateLimitHits.Inc()
				app.rateLimitExceededResponse(w, r, retryAfter)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
