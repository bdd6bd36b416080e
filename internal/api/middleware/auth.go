package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/partizan-booking/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном бэк-офиса
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "требуется токен администратора"

// AdminAuth пропускает запрос только с верным X-Admin-Token
// Пустой токен в конфигурации закрывает бэк-офис полностью
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
