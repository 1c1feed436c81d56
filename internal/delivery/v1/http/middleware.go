package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/retail-backend/internal/domain"
	"github.com/DRSN-tech/retail-backend/pkg/e"
)

type ctxKey string

const principalCtxKey ctxKey = "principal"

// Authenticate извлекает принципала из заголовков, проставленных шлюзом
// аутентификации выше по цепочке. Запрос без валидного принципала отклоняется.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-Id")
		role, ok := domain.ParseRole(r.Header.Get("X-User-Role"))
		if userID == "" || !ok {
			WriteError(w, e.ErrUnauthenticated)
			return
		}

		principal := domain.Principal{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), principalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func principalFromCtx(ctx context.Context) (domain.Principal, error) {
	principal, ok := ctx.Value(principalCtxKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, e.ErrUnauthenticated
	}
	return principal, nil
}
