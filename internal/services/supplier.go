package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sdiallo/quincaillerie-api/internal/database"
	"github.com/sdiallo/quincaillerie-api/internal/models"
)

var (
	ErrSupplierIsNotExist          = errors.New("поставщик не существует")
	ErrSupplierIsAlreadyRegistered = errors.New("поставщик с таким email уже существует")
)

// SupplierService сервис управления поставщиками. Поставщики хранятся как
// пользователи с ролью fournisseur, но в систему не входят.
type SupplierService struct {
	storage SupplierStorage
}

// SupplierStorage определяет интерфейс для взаимодействия с хранилищем поставщиков
type SupplierStorage interface {
	FindSuppliers(ctx context.Context) ([]models.Supplier, error)
	FindSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier models.Supplier, hash string) (int64, error)
	UpdateSupplier(ctx context.Context, supplier models.Supplier, hash string) error
	SoftDeleteSupplier(ctx context.Context, id int64) error
}

// NewSupplierService создает новый экземпляр SupplierService с заданным хранилищем
func NewSupplierService(storage SupplierStorage) *SupplierService {
	return &SupplierService{storage: storage}
}

// GetSuppliers возвращает всех поставщиков.
func (s *SupplierService) GetSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.storage.FindSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении поставщиков: %w", err)
	}
	if suppliers == nil {
		suppliers = make([]models.Supplier, 0)
	}
	return suppliers, nil
}

// GetSupplier возвращает поставщика по идентификатору.
func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.storage.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске поставщика: %w", err)
	}
	if supplier == nil {
		return nil, ErrSupplierIsNotExist
	}
	return supplier, nil
}

// CreateSupplier создает поставщика. Пароль необязателен: поставщик не входит
// в систему, при отсутствии пароля хэш остаётся пустым.
func (s *SupplierService) CreateSupplier(ctx context.Context, supplier models.UnknownSupplier) (*models.Supplier, error) {
	if err := validateSupplier(supplier); err != nil {
		return nil, err
	}

	hash, err := hashSupplierPassword(supplier.Password)
	if err != nil {
		return nil, err
	}

	record := models.Supplier{
		Nom:    *supplier.Nom,
		Prenom: derefString(supplier.Prenom),
		Email:  *supplier.Email,
	}

	id, err := s.storage.CreateSupplier(ctx, record, hash)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			return nil, ErrSupplierIsAlreadyRegistered
		}
		return nil, fmt.Errorf("ошибка при создании поставщика: %w", err)
	}
	record.ID = id

	return &record, nil
}

// UpdateSupplier обновляет данные поставщика. Переданный пароль хэшируется
// заново, без пароля прежний хэш сохраняется.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id int64, supplier models.UnknownSupplier) (*models.Supplier, error) {
	if err := validateSupplier(supplier); err != nil {
		return nil, err
	}

	hash, err := hashSupplierPassword(supplier.Password)
	if err != nil {
		return nil, err
	}

	record := models.Supplier{
		ID:     id,
		Nom:    *supplier.Nom,
		Prenom: derefString(supplier.Prenom),
		Email:  *supplier.Email,
	}

	if err := s.storage.UpdateSupplier(ctx, record, hash); err != nil {
		switch {
		case errors.Is(err, database.ErrRecordNotFound):
			return nil, ErrSupplierIsNotExist
		case errors.Is(err, database.ErrDuplicateUser):
			return nil, ErrSupplierIsAlreadyRegistered
		}
		return nil, fmt.Errorf("ошибка при обновлении поставщика: %w", err)
	}

	return &record, nil
}

// DeleteSupplier помечает поставщика удалённым.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	if err := s.storage.SoftDeleteSupplier(ctx, id); err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return ErrSupplierIsNotExist
		}
		return fmt.Errorf("ошибка при удалении поставщика: %w", err)
	}
	return nil
}

// hashSupplierPassword хэширует пароль поставщика. Без пароля возвращает
// пустой хэш: поставщик в систему не входит.
func hashSupplierPassword(password *string) (string, error) {
	if password == nil || *password == "" {
		return "", nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хэшировании пароля: %w", err)
	}
	return string(hashedPassword), nil
}

// validateSupplier проверяет обязательные поля поставщика.
func validateSupplier(supplier models.UnknownSupplier) error {
	if supplier.Nom == nil || *supplier.Nom == "" {
		return errors.New("имя поставщика не может быть пустым")
	}
	if supplier.Email == nil || *supplier.Email == "" {
		return errors.New("email поставщика не может быть пустым")
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
