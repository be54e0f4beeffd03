package middleware

import (
	"context"
	"net/http"
	"strings"

	"scratch_backend/internal/model"
	"scratch_backend/pkg/resp"
	"scratch_backend/pkg/token"
)

type ctxKey struct{}

// AdminAuth пропускает только запросы с валидным admin JWT в заголовке Authorization
func AdminAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteJSONError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		})
	}
}

// AdminFromContext claims администратора, положенные AdminAuth
func AdminFromContext(ctx context.Context) (*model.AdminClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*model.AdminClaims)
	return claims, ok
}
