package models

// Capability право на группу операций. Обработчики и middleware проверяют
// права, а не сравнивают строки ролей: соответствие роль → права задаётся
// только здесь.
type Capability string

const (
	CapManageCatalog    Capability = "manage_catalog"
	CapManageSuppliers  Capability = "manage_suppliers"
	CapManageOrders     Capability = "manage_orders"
	CapRegisterPayments Capability = "register_payments"
)

// roleCapabilities таблица соответствия статических ролей и прав.
var roleCapabilities = map[Role][]Capability{
	RoleGestionnaire:        {CapManageCatalog, CapManageSuppliers},
	RoleResponsableAchat:    {CapManageOrders},
	RoleResponsablePaiement: {CapRegisterPayments},
}

// Can сообщает, входит ли право в набор прав роли.
func (r Role) Can(capability Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == capability {
			return true
		}
	}
	return false
}
