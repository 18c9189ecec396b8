package middlewares

import (
	"net/http"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// RequireCapability пропускает запрос дальше, только если роль пользователя
// даёт указанное право. Должен стоять после Middleware аутентификации,
// положившего пользователя в контекст.
func RequireCapability(capability models.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(w, r)
			if user == nil {
				return
			}

			if !user.Role.Can(capability) {
				http.Error(w, "Accès refusé : rôle non autorisé", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
