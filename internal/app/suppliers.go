package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sdiallo/quincaillerie-api/internal/middlewares"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
)

// GetSuppliers возвращает всех поставщиков.
func GetSuppliers(w http.ResponseWriter, r *http.Request) {
	supplierService := middlewares.GetServiceFromContext[models.SupplierService](w, r, middlewares.SupplierServiceKey)

	suppliers, err := (*supplierService).GetSuppliers(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la récupération des fournisseurs : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, suppliers)
}

// GetSupplier возвращает поставщика по идентификатору.
func GetSupplier(w http.ResponseWriter, r *http.Request) {
	supplierService := middlewares.GetServiceFromContext[models.SupplierService](w, r, middlewares.SupplierServiceKey)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	supplier, err := (*supplierService).GetSupplier(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSupplierIsNotExist) {
			http.Error(w, "Fournisseur non trouvé", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de la récupération du fournisseur : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, supplier)
}

// CreateSupplier создает поставщика.
func CreateSupplier(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownSupplier](w, r)

	supplierService := middlewares.GetServiceFromContext[models.SupplierService](w, r, middlewares.SupplierServiceKey)

	supplier, err := (*supplierService).CreateSupplier(r.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrSupplierIsAlreadyRegistered) {
			http.Error(w, "Un fournisseur avec cet email existe déjà", http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de la création du fournisseur : %s", err.Error()), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, supplier)
}

// UpdateSupplier обновляет данные поставщика.
func UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownSupplier](w, r)

	supplierService := middlewares.GetServiceFromContext[models.SupplierService](w, r, middlewares.SupplierServiceKey)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	supplier, err := (*supplierService).UpdateSupplier(r.Context(), id, data)
	if err != nil {
		if errors.Is(err, services.ErrSupplierIsNotExist) {
			http.Error(w, "Fournisseur non trouvé", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrSupplierIsAlreadyRegistered) {
			http.Error(w, "Un fournisseur avec cet email existe déjà", http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de la mise à jour du fournisseur : %s", err.Error()), http.StatusBadRequest)
		return
	}

	middlewares.EncodeJSONResponse(w, supplier)
}

// DeleteSupplier помечает поставщика удалённым.
func DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	supplierService := middlewares.GetServiceFromContext[models.SupplierService](w, r, middlewares.SupplierServiceKey)

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := (*supplierService).DeleteSupplier(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrSupplierIsNotExist) {
			http.Error(w, "Fournisseur non trouvé", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de la suppression du fournisseur : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
