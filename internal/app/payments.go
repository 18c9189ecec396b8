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

// RegisterPayment регистрирует платёж по доставленному заказу.
func RegisterPayment(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.UnknownPayment](w, r)

	paymentService := middlewares.GetServiceFromContext[models.PaymentService](w, r, middlewares.PaymentServiceKey)

	if data.CommandeID == nil || data.Montant == nil {
		http.Error(w, "commandeId et montant sont obligatoires", http.StatusBadRequest)
		return
	}

	var dateVersement *time.Time
	if data.DateVersement != nil {
		dateVersement = &data.DateVersement.Time
	}

	payment, err := (*paymentService).RegisterPayment(r.Context(), *data.CommandeID, *data.Montant, dateVersement)
	if err != nil {
		// Несуществующий и недоставленный заказ неразличимы в ответе.
		if errors.Is(err, services.ErrOrderNotFound) || errors.Is(err, services.ErrOrderNotDeliverable) {
			http.Error(w, "Commande non livrée ou inexistante", http.StatusBadRequest)
			return
		}

		if errors.Is(err, services.ErrInstallmentLimitExceeded) {
			http.Error(w, "Maximum 3 versements autorisés", http.StatusBadRequest)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors de l'enregistrement du versement : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, payment)
}

// GetPaymentHistory возвращает платежи по заказу по возрастанию номера.
// По неизвестному заказу отдаётся пустой список.
func GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	paymentService := middlewares.GetServiceFromContext[models.PaymentService](w, r, middlewares.PaymentServiceKey)

	orderID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	history, err := (*paymentService).GetHistory(r.Context(), orderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la récupération des versements : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, history)
}

// GetRemainingBalance возвращает остаток к оплате по заказу.
func GetRemainingBalance(w http.ResponseWriter, r *http.Request) {
	paymentService := middlewares.GetServiceFromContext[models.PaymentService](w, r, middlewares.PaymentServiceKey)

	orderID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	restant, err := (*paymentService).GetRemainingBalance(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Commande non trouvée", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Erreur lors du calcul du montant restant : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, models.RemainingBalance{MontantRestant: restant})
}

// GetDebtBySupplier возвращает суммарный долг по каждому поставщику.
func GetDebtBySupplier(w http.ResponseWriter, r *http.Request) {
	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)

	debts, err := (*statsService).GetDebtBySupplier(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors du calcul des dettes : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, debts)
}

// GetOrdersInProgress возвращает доставленные, но не полностью оплаченные заказы.
func GetOrdersInProgress(w http.ResponseWriter, r *http.Request) {
	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)

	orders, err := (*statsService).GetOrdersInProgress(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors de la récupération des commandes en cours : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

// GetDailyStats возвращает сводные показатели за текущий календарный день.
func GetDailyStats(w http.ResponseWriter, r *http.Request) {
	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)

	stats, err := (*statsService).GetDailyStats(r.Context(), time.Now())
	if err != nil {
		http.Error(w, fmt.Sprintf("Erreur lors du calcul des statistiques : %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, stats)
}

// parseIDParam разбирает обязательный параметр пути id.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Identifiant invalide", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
