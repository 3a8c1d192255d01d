package nav

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func tabNames(tabs []Tab) []string {
	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, t.Name)
	}
	return out
}

func TestVisibleTabs_PerRole(t *testing.T) {
	assert.Equal(t,
		[]string{"home", "menus", "mis-pedidos", "perfil"},
		tabNames(VisibleTabs(model.RoleUser)))

	assert.Equal(t,
		[]string{"pedidos-vendor", "gestionar-menus", "comentarios", "perfil"},
		tabNames(VisibleTabs(model.RoleVendor)))

	assert.Equal(t,
		[]string{"dashboard", "gestionar-usuarios", "gestionar-vendors", "comentarios", "perfil"},
		tabNames(VisibleTabs(model.RoleAdmin)))
}

func TestVisibleTabs_UnknownRoleFallsBackToUser(t *testing.T) {
	assert.Equal(t,
		tabNames(VisibleTabs(model.RoleUser)),
		tabNames(VisibleTabs(model.Role("SUPERVISOR"))))
}

func TestVisibleTabs_NoTabAppearsTwice(t *testing.T) {
	for _, role := range []model.Role{model.RoleUser, model.RoleVendor, model.RoleAdmin} {
		seen := map[string]bool{}
		for _, name := range tabNames(VisibleTabs(role)) {
			assert.False(t, seen[name], "tab %s duplicada para %s", name, role)
			seen[name] = true
		}
	}
}
