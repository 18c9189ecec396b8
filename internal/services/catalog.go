package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sdiallo/quincaillerie-api/internal/database"
)

var ErrRecordIsNotExist = errors.New("запись не найдена")

// crudStore определяет интерфейс обобщённого хранилища справочников
type crudStore[Model any] interface {
	FindAll(ctx context.Context) ([]Model, error)
	FindByID(ctx context.Context, id int64) (*Model, error)
	Create(ctx context.Context, item *Model) (int64, error)
	Update(ctx context.Context, id int64, item *Model) error
	SoftDelete(ctx context.Context, id int64) error
}

// CatalogService обобщённый CRUD-сервис справочников каталога: категории,
// подкатегории и товары обслуживаются одной реализацией. setID проставляет
// модели идентификатор, присвоенный базой данных.
type CatalogService[Model any] struct {
	storage crudStore[Model]
	setID   func(item *Model, id int64)
}

// NewCatalogService создает новый экземпляр CatalogService с заданным хранилищем
func NewCatalogService[Model any](storage crudStore[Model], setID func(item *Model, id int64)) *CatalogService[Model] {
	return &CatalogService[Model]{storage: storage, setID: setID}
}

// GetAll возвращает все записи справочника.
func (c *CatalogService[Model]) GetAll(ctx context.Context) ([]Model, error) {
	items, err := c.storage.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении записей: %w", err)
	}
	if items == nil {
		items = make([]Model, 0)
	}
	return items, nil
}

// GetByID возвращает запись по идентификатору.
func (c *CatalogService[Model]) GetByID(ctx context.Context, id int64) (*Model, error) {
	item, err := c.storage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске записи: %w", err)
	}
	if item == nil {
		return nil, ErrRecordIsNotExist
	}
	return item, nil
}

// Create создает запись и возвращает её с присвоенным идентификатором.
func (c *CatalogService[Model]) Create(ctx context.Context, item Model) (*Model, error) {
	id, err := c.storage.Create(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании записи: %w", err)
	}
	c.setID(&item, id)
	return &item, nil
}

// Update обновляет запись по идентификатору.
func (c *CatalogService[Model]) Update(ctx context.Context, id int64, item Model) (*Model, error) {
	if err := c.storage.Update(ctx, id, &item); err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return nil, ErrRecordIsNotExist
		}
		return nil, fmt.Errorf("ошибка при обновлении записи: %w", err)
	}
	c.setID(&item, id)
	return &item, nil
}

// Delete помечает запись удалённой.
func (c *CatalogService[Model]) Delete(ctx context.Context, id int64) error {
	if err := c.storage.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return ErrRecordIsNotExist
		}
		return fmt.Errorf("ошибка при удалении записи: %w", err)
	}
	return nil
}
