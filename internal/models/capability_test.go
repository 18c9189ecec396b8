package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Соответствие ролей и прав задаётся только таблицей roleCapabilities.
func TestRoleCan(t *testing.T) {
	assert.True(t, RoleGestionnaire.Can(CapManageCatalog))
	assert.True(t, RoleGestionnaire.Can(CapManageSuppliers))
	assert.False(t, RoleGestionnaire.Can(CapManageOrders))
	assert.False(t, RoleGestionnaire.Can(CapRegisterPayments))

	assert.True(t, RoleResponsableAchat.Can(CapManageOrders))
	assert.False(t, RoleResponsableAchat.Can(CapRegisterPayments))

	assert.True(t, RoleResponsablePaiement.Can(CapRegisterPayments))
	assert.False(t, RoleResponsablePaiement.Can(CapManageCatalog))

	// Поставщик — каталожная роль без прав на операции.
	assert.False(t, RoleFournisseur.Can(CapManageCatalog))
	assert.False(t, RoleFournisseur.Can(CapManageOrders))
	assert.False(t, RoleFournisseur.Can(CapRegisterPayments))

	// Неизвестная роль не получает прав.
	assert.False(t, Role("inconnu").Can(CapManageOrders))
}
