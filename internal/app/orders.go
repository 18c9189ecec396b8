package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sdiallo/quincaillerie-api/internal/middlewares"
	"github.com/sdiallo/quincaillerie-api/internal/models"
	"github.com/sdiallo/quincaillerie-api/internal/services"
)

// CreateOrder обрабатывает запрос на создание заказа поставщику.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownOrder](w, r)

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	order, err := (*orderService).CreateOrder(r.Context(), user.ID, data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la création de la commande : %s", err.Error()), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, order)
}

// GetOrders возвращает заказы пользователя. Параметры dateDebut, dateFin и
// etat необязательны и сужают выборку.
func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	filter, err := parseOrderFilter(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Paramètres de filtre invalides : %s", err.Error()), http.StatusBadRequest)
		return
	}

	orders, err := (*orderService).GetOwnerOrders(r.Context(), user.ID, filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la récupération des commandes : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

// CancelOrder помечает заказ пользователя удалённым.
func CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Identifiant de commande invalide", http.StatusBadRequest)
		return
	}

	if err := (*orderService).CancelOrder(r.Context(), user.ID, orderID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Commande non trouvée", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrOrderAccessDenied) {
			http.Error(w, "Cette commande appartient à un autre utilisateur", http.StatusForbidden)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de l'annulation de la commande : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// parseOrderFilter разбирает необязательные параметры фильтра заказов.
func parseOrderFilter(r *http.Request) (models.OrderFilter, error) {
	filter := models.OrderFilter{}

	if raw := r.URL.Query().Get("dateDebut"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("dateDebut: %w", err)
		}
		filter.DateDebut = &parsed
	}

	if raw := r.URL.Query().Get("dateFin"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("dateFin: %w", err)
		}
		filter.DateFin = &parsed
	}

	if raw := r.URL.Query().Get("etat"); raw != "" {
		etat := models.OrderStatus(raw)
		switch etat {
		case models.StatusPending, models.StatusDelivered, models.StatusPaid:
			filter.Etat = etat
		default:
			return filter, fmt.Errorf("etat inconnu: %s", raw)
		}
	}

	return filter, nil
}
