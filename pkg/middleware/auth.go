package middleware

import (
	"net/http"
	"strings"

	"ticket-service/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// APIKey checks "Authorization: Bearer <key>" against a bcrypt hash of the key.
// An empty hash disables the check.
func APIKey(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if keyHash == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(token)); err != nil {
				requestID, _ := utils.GetRequestIDFromContext(r.Context())
				logger.Warn("Rejected API key",
					zap.String("request_id", requestID),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
