package middleware

import (
	"net/http"
	"strings"

	"skylogger/dronelog/internal/auth"
	"skylogger/dronelog/internal/common"
)

// AuthMiddleware verifies the bearer session token and resolves it against
// the session store, then attaches claims to the request context.
func AuthMiddleware(tokenSvc *common.TokenService, sessionSvc *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			token, err := tokenSvc.ValidateSessionToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			// Tokens outlive nothing: a logged-out or expired session wins.
			session, err := sessionSvc.GetSession(r.Context(), token.SessionID)
			if err != nil {
				http.Error(w, "Unauthorized. Session expired", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				UserUUID:     session.UserID,
				UsernameVal:  session.Username,
				SessionIDVal: session.SessionID,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
