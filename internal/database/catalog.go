package database

import (
	"github.com/jackc/pgx/v5"

	"github.com/sdiallo/quincaillerie-api/internal/models"
)

// NewCategoryStore хранилище категорий товаров.
func NewCategoryStore(d *Database) *CRUDStore[models.Category] {
	return NewCRUDStore(d, TableSpec[models.Category]{
		Table:   "categories",
		Columns: []string{"nom"},
		Scan: func(row pgx.Row) (*models.Category, error) {
			item := &models.Category{}
			if err := row.Scan(&item.ID, &item.Nom); err != nil {
				return nil, err
			}
			return item, nil
		},
		Values: func(item *models.Category) []interface{} {
			return []interface{}{item.Nom}
		},
	})
}

// NewSubCategoryStore хранилище подкатегорий.
func NewSubCategoryStore(d *Database) *CRUDStore[models.SubCategory] {
	return NewCRUDStore(d, TableSpec[models.SubCategory]{
		Table:   "sous_categories",
		Columns: []string{"nom", "categorie_id"},
		Scan: func(row pgx.Row) (*models.SubCategory, error) {
			item := &models.SubCategory{}
			if err := row.Scan(&item.ID, &item.Nom, &item.CategorieID); err != nil {
				return nil, err
			}
			return item, nil
		},
		Values: func(item *models.SubCategory) []interface{} {
			return []interface{}{item.Nom, item.CategorieID}
		},
	})
}

// NewProductStore хранилище товаров.
func NewProductStore(d *Database) *CRUDStore[models.Product] {
	return NewCRUDStore(d, TableSpec[models.Product]{
		Table:   "produits",
		Columns: []string{"nom", "prix", "sous_categorie_id"},
		Scan: func(row pgx.Row) (*models.Product, error) {
			item := &models.Product{}
			if err := row.Scan(&item.ID, &item.Nom, &item.Prix, &item.SousCategorieID); err != nil {
				return nil, err
			}
			return item, nil
		},
		Values: func(item *models.Product) []interface{} {
			return []interface{}{item.Nom, item.Prix, item.SousCategorieID}
		},
	})
}
