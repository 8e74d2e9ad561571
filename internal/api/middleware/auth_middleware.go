package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

// AuthMiddleware 驗證Bearer token並把payload放進上下文
// 核心層信任這裡放入的身份，不再重複驗證
func AuthMiddleware(tokenMaker token.Maker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorizationHeader := r.Header.Get(string(constants.AuthorizationHeaderKey))
			if authorizationHeader == "" {
				api.ErrorJSON(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			fields := strings.Fields(authorizationHeader)
			if len(fields) < 2 {
				api.ErrorJSON(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			authorizationType := strings.ToLower(fields[0])
			if authorizationType != string(constants.AuthorizationTypeBearer) {
				api.ErrorJSON(w, http.StatusUnauthorized, "unsupported authorization type")
				return
			}

			payload, err := tokenMaker.VerifyToken(fields[1])
			if err != nil {
				api.ErrorJSON(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware 限制admin角色，需放在AuthMiddleware之後
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := util.GetTokenPayloadFromContext(r.Context())
		if payload == nil {
			api.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
			return
		}
		if payload.Role != string(constants.RoleAdmin) {
			api.ErrorJSON(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
