package models

// Role статическая роль пользователя системы.
// Значения совпадают со значениями колонки role в базе данных и claim'а role в JWT.
type Role string

const (
	RoleGestionnaire        Role = "gestionnaire"
	RoleResponsableAchat    Role = "responsable_achat"
	RoleResponsablePaiement Role = "responsable_payement"
	// RoleFournisseur — каталожная роль: поставщики хранятся в таблице users,
	// но в систему не входят.
	RoleFournisseur Role = "fournisseur"
)

// UnknownUser данные запроса на регистрацию или вход, до проверки.
type UnknownUser struct {
	Nom             *string `json:"nom,omitempty"`
	Prenom          *string `json:"prenom,omitempty"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password,omitempty"`
	Role            *Role   `json:"role,omitempty"`
}

type User struct {
	ID     int64
	Nom    string
	Prenom string
	Email  string
	Hash   string
	Role   Role
}

// Supplier публичное представление поставщика (пользователь с ролью fournisseur).
type Supplier struct {
	ID     int64  `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

// UnknownSupplier данные запроса на создание или изменение поставщика.
type UnknownSupplier struct {
	Nom      *string `json:"nom"`
	Prenom   *string `json:"prenom"`
	Email    *string `json:"email"`
	Password *string `json:"password,omitempty"`
}
