package models

import (
	"github.com/sdiallo/quincaillerie-api/internal/utils"
)

// Payment версия (частичный платёж) по заказу. Создаётся только через
// PaymentService, никогда не обновляется; удаление — только мягкое.
type Payment struct {
	ID              int64             `json:"id"`
	CommandeID      int64             `json:"commandeId"`
	Montant         float64           `json:"montant"`
	DateVersement   utils.RFC3339Date `json:"dateVersement"`
	NumeroVersement int               `json:"numeroVersement"`
}

// UnknownPayment данные запроса на регистрацию платежа, до проверки.
// DateVersement необязательна: по умолчанию берётся момент обработки запроса.
type UnknownPayment struct {
	CommandeID    *int64             `json:"commandeId"`
	Montant       *float64           `json:"montant"`
	DateVersement *utils.RFC3339Date `json:"dateVersement,omitempty"`
}

// PaymentHistoryItem строка истории платежей по заказу.
type PaymentHistoryItem struct {
	NumeroVersement int               `json:"numeroVersement"`
	DateVersement   utils.RFC3339Date `json:"dateVersement"`
	Montant         float64           `json:"montant"`
}

// RemainingBalance остаток к оплате по заказу. Может быть отрицательным,
// если заказ переплачен.
type RemainingBalance struct {
	MontantRestant float64 `json:"montantRestant"`
}

// OrderInProgress доставленный, но не полностью оплаченный заказ.
type OrderInProgress struct {
	CommandeID     int64   `json:"commandeId"`
	FournisseurID  int64   `json:"fournisseurId"`
	MontantTotal   float64 `json:"montantTotal"`
	MontantVerse   float64 `json:"montantVerse"`
	MontantRestant float64 `json:"montantRestant"`
}

// DailyStats сводные показатели за календарный день.
type DailyStats struct {
	NbCommandesEncours       int     `json:"nbCommandesEncours"`
	NbCommandesLivraisonJour int     `json:"nbCommandesLivraisonJour"`
	DetteTotale              float64 `json:"detteTotale"`
	TotalVersementsJour      float64 `json:"totalVersementsJour"`
}
