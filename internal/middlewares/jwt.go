package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
)

// userFieldType определяет тип для ключа, используемого для хранения данных пользователя в контексте.
type userFieldType string

// userField является ключом для хранения информации о пользователе в контексте запроса.
const userField userFieldType = "userField"

// AuthMiddlewareConfig представляет конфигурацию middleware для аутентификации.
type AuthMiddlewareConfig struct {
	excludePaths []string // Пути, которые будут исключены из проверки аутентификации.
}

// AuthMiddleware создает новую конфигурацию middleware для аутентификации.
func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths устанавливает пути, которые будут исключены из проверки аутентификации.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware возвращает middleware для аутентификации, используя установленную конфигурацию.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем, является ли текущий путь исключенным из проверки аутентификации.
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Извлекаем сервисы аутентификации и JWT из контекста запроса.
		authService := GetServiceFromContext[models.AuthService](w, r, AuthServiceKey)
		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			http.Error(w, "En-tête Authorization requis", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			http.Error(w, "Token Bearer vide", http.StatusUnauthorized)
			return
		}

		// Валидируем токен с помощью JWT-сервиса.
		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsInvalid) {
				http.Error(w, "Token invalide", http.StatusUnauthorized)
				return
			}

			if errors.Is(err, services.ErrTokenIsExpired) {
				http.Error(w, "Token expiré", http.StatusUnauthorized)
				return
			}

			http.Error(w, fmt.Sprintf("Erreur lors de la validation du token : %s", err.Error()), http.StatusUnauthorized)
			return
		}

		// Извлекаем email пользователя из токена.
		email, err := token.Claims.GetSubject()
		if err != nil {
			http.Error(w, fmt.Sprintf("Erreur lors de la lecture du champ sub : %s", err.Error()), http.StatusUnauthorized)
			return
		}

		// Получаем пользователя из базы данных по email.
		user, err := (*authService).GetUser(r.Context(), email)
		if err != nil {
			if errors.Is(err, services.ErrUserIsNotExist) {
				http.Error(w, fmt.Sprintf("L'utilisateur %s n'existe pas", email), http.StatusUnauthorized)
				return
			}

			http.Error(w, fmt.Sprintf("Erreur lors de la vérification de l'utilisateur : %s", err.Error()), http.StatusInternalServerError)
			return
		}

		// Добавляем информацию о пользователе в контекст запроса и передаем управление следующему обработчику.
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userField, user)))
	})
}

// GetUserFromContext извлекает информацию о пользователе из контекста запроса.
// В случае ошибки возвращает HTTP 500 и nil.
func GetUserFromContext(w http.ResponseWriter, r *http.Request) *models.User {
	user, ok := r.Context().Value(userField).(*models.User)

	if !ok {
		http.Error(w, "Impossible de récupérer l'utilisateur du contexte", http.StatusInternalServerError)
		return nil
	}

	return user
}
