package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/opendiscuss/forum/internal/domain"
	internal_jwt "github.com/opendiscuss/forum/internal/jwt"
	"github.com/opendiscuss/forum/internal/utils"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

// Auth authenticates the request from a Bearer token or the accessToken
// cookie and stores the user in the request context.
func Auth(jwtService internal_jwt.JwtService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := tokenFromRequest(r)
			if !ok {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			token, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			uid, uidOk := claims["uid"].(string)
			username, usernameOk := claims["username"].(string)
			if !uidOk || !usernameOk {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			user := &domain.User{
				Id:       domain.UserId(uid),
				Username: domain.Username(username),
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer "), true
	}
	if cookie, err := r.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// WithUser stores the user in the context the way Auth does.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userClaimsKey, user)
}

// GetUserFromContext returns the authenticated user, nil outside Auth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
