package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// stubSupplierStorage подменяет хранилище поставщиков в тестах.
type stubSupplierStorage struct {
	findSuppliers      func(ctx context.Context) ([]models.Supplier, error)
	findSupplierByID   func(ctx context.Context, id int64) (*models.Supplier, error)
	createSupplier     func(ctx context.Context, supplier models.Supplier, hash string) (int64, error)
	updateSupplier     func(ctx context.Context, supplier models.Supplier, hash string) error
	softDeleteSupplier func(ctx context.Context, id int64) error
}

func (s *stubSupplierStorage) FindSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.findSuppliers(ctx)
}

func (s *stubSupplierStorage) FindSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	return s.findSupplierByID(ctx, id)
}

func (s *stubSupplierStorage) CreateSupplier(ctx context.Context, supplier models.Supplier, hash string) (int64, error) {
	return s.createSupplier(ctx, supplier, hash)
}

func (s *stubSupplierStorage) UpdateSupplier(ctx context.Context, supplier models.Supplier, hash string) error {
	return s.updateSupplier(ctx, supplier, hash)
}

func (s *stubSupplierStorage) SoftDeleteSupplier(ctx context.Context, id int64) error {
	return s.softDeleteSupplier(ctx, id)
}

// Поставщик с паролем создаётся с корректным bcrypt-хэшем.
func TestCreateSupplierHashesPassword(t *testing.T) {
	var receivedHash string

	storage := &stubSupplierStorage{
		createSupplier: func(_ context.Context, _ models.Supplier, hash string) (int64, error) {
			receivedHash = hash
			return 3, nil
		},
	}

	nom := "Diagne"
	email := "diagne@fournisseur.sn"
	password := "secret"

	supplier, err := NewSupplierService(storage).CreateSupplier(context.Background(), models.UnknownSupplier{
		Nom: &nom, Email: &email, Password: &password,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), supplier.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(receivedHash), []byte(password)))
}

// Новый пароль при обновлении хэшируется заново.
func TestUpdateSupplierRehashesPassword(t *testing.T) {
	var receivedHash string

	storage := &stubSupplierStorage{
		updateSupplier: func(_ context.Context, _ models.Supplier, hash string) error {
			receivedHash = hash
			return nil
		},
	}

	nom := "Diagne"
	email := "diagne@fournisseur.sn"
	password := "nouveau"

	supplier, err := NewSupplierService(storage).UpdateSupplier(context.Background(), 3, models.UnknownSupplier{
		Nom: &nom, Email: &email, Password: &password,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), supplier.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(receivedHash), []byte(password)))
}

// Обновление без пароля передаёт пустой хэш: прежний пароль остаётся в силе.
func TestUpdateSupplierKeepsPasswordWhenAbsent(t *testing.T) {
	var receivedHash string

	storage := &stubSupplierStorage{
		updateSupplier: func(_ context.Context, _ models.Supplier, hash string) error {
			receivedHash = hash
			return nil
		},
	}

	nom := "Diagne"
	email := "diagne@fournisseur.sn"

	_, err := NewSupplierService(storage).UpdateSupplier(context.Background(), 3, models.UnknownSupplier{
		Nom: &nom, Email: &email,
	})

	require.NoError(t, err)
	assert.Empty(t, receivedHash)
}
