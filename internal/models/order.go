package models

import (
	"time"

	"github.com/sdiallo/quincaillerie-api/internal/utils"
)

// OrderStatus состояние заказа поставщику. Значения на проводе и в базе —
// исходные французские: encours (ожидает), livre (доставлен), payer (оплачен).
type OrderStatus string

const (
	StatusPending   OrderStatus = "encours"
	StatusDelivered OrderStatus = "livre"
	StatusPaid      OrderStatus = "payer"
)

// Order заказ поставщику. Переходы состояний только вперёд:
// encours → livre → payer. Отменённый заказ помечается deleted_at
// и после этого неизменяем.
type Order struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"userId"`
	DateCommande  utils.RFC3339Date `json:"dateCommande"`
	DateLivraison utils.RFC3339Date `json:"dateLivraison"`
	MontantTotal  float64           `json:"montantTotal"`
	Etat          OrderStatus       `json:"etat"`
}

// UnknownOrder данные запроса на создание заказа, до проверки.
type UnknownOrder struct {
	DateLivraison *utils.RFC3339Date `json:"dateLivraison"`
	MontantTotal  *float64           `json:"montantTotal"`
}

// OrderFilter необязательные условия выборки заказов ответственного по закупкам.
type OrderFilter struct {
	DateDebut *time.Time
	DateFin   *time.Time
	Etat      OrderStatus
}
