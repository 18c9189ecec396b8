package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sdiallo/quincaillerie-api/internal/middlewares"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
)

// registerCatalogRoutes регистрирует CRUD-маршруты справочника каталога.
// Чтение доступно любому аутентифицированному пользователю, изменение
// требует права управления каталогом.
func registerCatalogRoutes[Model any](r chi.Router, pattern string, serviceKey middlewares.Key) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", getAllRecords[Model](serviceKey))
		r.Get("/{id}", getRecordByID[Model](serviceKey))
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireCapability(models.CapManageCatalog))
			r.With(middlewares.JSONMiddleware[Model]).Post("/", createRecord[Model](serviceKey))
			r.With(middlewares.JSONMiddleware[Model]).Put("/{id}", updateRecord[Model](serviceKey))
			r.Delete("/{id}", deleteRecord[Model](serviceKey))
		})
	})
}

func getAllRecords[Model any](serviceKey middlewares.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service := middlewares.GetServiceFromContext[models.CRUDService[Model]](w, r, serviceKey)

		items, err := (*service).GetAll(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Erreur lors de la récupération des enregistrements : %s", err.Error()), http.StatusInternalServerError)
			return
		}

		middlewares.EncodeJSONResponse(w, items)
	}
}

func getRecordByID[Model any](serviceKey middlewares.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service := middlewares.GetServiceFromContext[models.CRUDService[Model]](w, r, serviceKey)

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		item, err := (*service).GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrRecordIsNotExist) {
				http.Error(w, "Enregistrement non trouvé", http.StatusNotFound)
				return
			}

			http.Error(w, fmt.Sprintf("Erreur lors de la récupération de l'enregistrement : %s", err.Error()), http.StatusInternalServerError)
			return
		}

		middlewares.EncodeJSONResponse(w, item)
	}
}

func createRecord[Model any](serviceKey middlewares.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := middlewares.GetParsedJSONData[Model](w, r)

		service := middlewares.GetServiceFromContext[models.CRUDService[Model]](w, r, serviceKey)

		item, err := (*service).Create(r.Context(), data)
		if err != nil {
			http.Error(w, fmt.Sprintf("Erreur lors de la création de l'enregistrement : %s", err.Error()), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		middlewares.EncodeJSONResponse(w, item)
	}
}

func updateRecord[Model any](serviceKey middlewares.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := middlewares.GetParsedJSONData[Model](w, r)

		service := middlewares.GetServiceFromContext[models.CRUDService[Model]](w, r, serviceKey)

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		item, err := (*service).Update(r.Context(), id, data)
		if err != nil {
			if errors.Is(err, services.ErrRecordIsNotExist) {
				http.Error(w, "Enregistrement non trouvé", http.StatusNotFound)
				return
			}

			http.Error(w, fmt.Sprintf("Erreur lors de la mise à jour de l'enregistrement : %s", err.Error()), http.StatusInternalServerError)
			return
		}

		middlewares.EncodeJSONResponse(w, item)
	}
}

func deleteRecord[Model any](serviceKey middlewares.Key) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service := middlewares.GetServiceFromContext[models.CRUDService[Model]](w, r, serviceKey)

		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := (*service).Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrRecordIsNotExist) {
				http.Error(w, "Enregistrement non trouvé", http.StatusNotFound)
				return
			}

			http.Error(w, fmt.Sprintf("Erreur lors de la suppression de l'enregistrement : %s", err.Error()), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
