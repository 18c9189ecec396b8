package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sdiallo/quincaillerie-api/internal/middlewares"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
)

// Register обрабатывает запрос на регистрацию пользователя и возвращает JWT токен.
func Register(w http.ResponseWriter, r *http.Request) {
	// Извлекаем данные пользователя из тела запроса.
	data := middlewares.GetParsedJSONData[models.UnknownUser](w, r)

	// Получаем сервисы аутентификации и JWT из контекста запроса.
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if ok := IsUnknownUserDataValid(data); !ok {
		http.Error(w, "Email ou mot de passe manquant", http.StatusBadRequest)
		return
	}

	// Регистрируем пользователя.
	if err := (*authService).Register(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsAlreadyRegistered) {
			http.Error(w, fmt.Sprintf("L'utilisateur %s existe déjà", *data.Email), http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de l'inscription : %s", err.Error()), http.StatusBadRequest)
		return
	}

	// Генерируем JWT токен для нового пользователя.
	token, err := (*jwtService).GenerateJWT(*data.Email, *data.Role)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la génération du token JWT : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Устанавливаем токен в заголовок ответа.
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.WriteHeader(http.StatusOK)
}

// Login обрабатывает запрос на вход пользователя и возвращает JWT токен при успешной авторизации.
func Login(w http.ResponseWriter, r *http.Request) {
	// Извлекаем данные пользователя из тела запроса.
	data := middlewares.GetParsedJSONData[models.UnknownUser](w, r)

	// Получаем сервисы аутентификации и JWT из контекста запроса.
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if ok := IsUnknownUserDataValid(data); !ok {
		http.Error(w, "Email ou mot de passe manquant", http.StatusBadRequest)
		return
	}

	// Пытаемся аутентифицировать пользователя.
	if err := (*authService).Login(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsNotExist) {
			http.Error(w, fmt.Sprintf("L'utilisateur %s n'existe pas", *data.Email), http.StatusUnauthorized)
			return
		}

		if errors.Is(err, services.ErrPasswordIsIncorrect) {
			http.Error(w, "Mot de passe incorrect", http.StatusUnauthorized)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de la connexion : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Роль берём из хранилища: вход не принимает роль на слово.
	user, err := (*authService).GetUser(r.Context(), *data.Email)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la récupération de l'utilisateur : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Генерируем JWT токен для успешной аутентификации.
	token, err := (*jwtService).GenerateJWT(user.Email, user.Role)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la génération du token JWT : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Устанавливаем токен в заголовок ответа.
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.WriteHeader(http.StatusOK)
}

// IsUnknownUserDataValid проверяет, что запрос содержит email и пароль.
func IsUnknownUserDataValid(data models.UnknownUser) bool {
	return data.Email != nil && *data.Email != "" && data.Password != nil && *data.Password != ""
}
