package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// Определение пользовательских ошибок
var (
	ErrUserIsAlreadyRegistered = errors.New("пользователь уже зарегистрирован")
	ErrUserIsNotExist          = errors.New("пользователь не существует")
	ErrPasswordIsIncorrect     = errors.New("пароль неверен")
)

// AuthService представляет сервис для аутентификации и управления пользователями
type AuthService struct {
	storage AuthStorage
}

// AuthStorage определяет интерфейс для взаимодействия с хранилищем данных пользователей
type AuthStorage interface {
	CreateUser(ctx context.Context, user database.UserDB) (int64, error)
	FindUser(ctx context.Context, email string) (*database.UserDB, error)
}

// NewAuthService создает новый экземпляр AuthService с заданным хранилищем
func NewAuthService(storage AuthStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Register регистрирует нового пользователя с одной из статических ролей
func (auth *AuthService) Register(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}
	if user.ConfirmPassword == nil || *user.ConfirmPassword != *user.Password {
		return errors.New("пароли не совпадают")
	}
	if user.Role == nil || !isAssignableRole(*user.Role) {
		return errors.New("недопустимая роль")
	}

	// Хэширование пароля
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хэшировании пароля: %w", err)
	}

	record := database.UserDB{
		User: models.User{
			Email: *user.Email,
			Hash:  string(hashedPassword),
			Role:  *user.Role,
		},
	}
	if user.Nom != nil {
		record.Nom = *user.Nom
	}
	if user.Prenom != nil {
		record.Prenom = *user.Prenom
	}

	// Создание пользователя в хранилище
	if _, err := auth.storage.CreateUser(ctx, record); err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			return ErrUserIsAlreadyRegistered
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// Login выполняет аутентификацию пользователя
func (auth *AuthService) Login(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}

	// Поиск пользователя по email
	u, err := auth.storage.FindUser(ctx, *user.Email)
	if err != nil {
		return fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if u == nil {
		return ErrUserIsNotExist
	}

	// Сравнение пароля
	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(*user.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordIsIncorrect
		}
		return fmt.Errorf("ошибка при сравнении паролей: %w", err)
	}

	return nil
}

// GetUser возвращает информацию о пользователе по email
func (auth *AuthService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := auth.storage.FindUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if user == nil {
		return nil, ErrUserIsNotExist
	}

	return &user.User, nil
}

// validateUser проверяет валидность входных данных пользователя
func validateUser(user models.UnknownUser) error {
	if user.Email == nil || *user.Email == "" {
		return errors.New("email не может быть пустым")
	}
	if user.Password == nil || *user.Password == "" {
		return errors.New("пароль не может быть пустым")
	}
	return nil
}

// isAssignableRole проверяет, что роль входит в число ролей, доступных при регистрации.
// Поставщики создаются через SupplierService, а не через регистрацию.
func isAssignableRole(role models.Role) bool {
	switch role {
	case models.RoleGestionnaire, models.RoleResponsableAchat, models.RoleResponsablePaiement:
		return true
	}
	return false
}
