package models

// Справочники каталога. Все три сущности обслуживаются одним обобщённым
// CRUD-хранилищем с мягким удалением.

type Category struct {
	ID  int64  `json:"id"`
	Nom string `json:"nom"`
}

type SubCategory struct {
	ID          int64  `json:"id"`
	Nom         string `json:"nom"`
	CategorieID int64  `json:"categorieId"`
}

type Product struct {
	ID              int64   `json:"id"`
	Nom             string  `json:"nom"`
	Prix            float64 `json:"prix"`
	SousCategorieID int64   `json:"sousCategorieId"`
}
