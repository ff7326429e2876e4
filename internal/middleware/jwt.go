package middleware

import (
	"context"
	"net/http"
	"strings"

	"jurisight/internal/config"
	"jurisight/internal/logger"
	"jurisight/internal/reqctx"
	"jurisight/internal/utils/helpers"
	"jurisight/internal/workflow"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// UserActivator reports whether an account is still allowed to act.
// Deactivated accounts keep valid tokens until expiry, so the check runs
// on every authenticated request.
type UserActivator interface {
	IsUserActive(ctx context.Context, userID int64) (bool, error)
}

func JWTAuth(cfg *config.Config, users UserActivator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.WithCtx(r.Context()).Warn("JWTAuth: missing access token")
			helpers.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			logger.WithCtx(r.Context()).Warn("JWTAuth: invalid or expired token", zap.Error(err))
			helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		userIDf, ok1 := claims["user_id"].(float64)
		roleRaw, ok2 := claims["role"].(string)
		if !ok1 || !ok2 {
			logger.WithCtx(r.Context()).Warn("JWTAuth: malformed payload", zap.Any("claims", claims))
			helpers.Error(w, http.StatusUnauthorized, "invalid token payload")
			return
		}

		role, err := workflow.ParseRole(roleRaw)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("JWTAuth: unknown role in token", zap.String("role", roleRaw))
			helpers.Error(w, http.StatusUnauthorized, "invalid token payload")
			return
		}

		userID := int64(userIDf)

		if active, err := users.IsUserActive(r.Context(), userID); err != nil || !active {
			logger.WithCtx(r.Context()).Warn("JWTAuth: inactive account",
				zap.Int64("user_id", userID), zap.Error(err))
			helpers.Error(w, http.StatusForbidden, "account is deactivated")
			return
		}

		ctx := reqctx.WithUserID(r.Context(), userID)
		ctx = reqctx.WithRole(ctx, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
