// Package nav はロールごとのナビゲーション表示を決める。
// 表示の出し分けであって認可ではない。認可はサーバーが行う。
package nav

import "app/internal/domain/model"

type Tab struct {
	Name  string
	Title string
	Roles []model.Role
}

// 宣言順がそのまま表示順
var allTabs = []Tab{
	{Name: "home", Title: "Inicio", Roles: []model.Role{model.RoleUser}},
	{Name: "menus", Title: "Menús", Roles: []model.Role{model.RoleUser}},
	{Name: "mis-pedidos", Title: "Mis Pedidos", Roles: []model.Role{model.RoleUser}},
	{Name: "pedidos-vendor", Title: "Pedidos", Roles: []model.Role{model.RoleVendor}},
	{Name: "gestionar-menus", Title: "Menús", Roles: []model.Role{model.RoleVendor}},
	{Name: "dashboard", Title: "Dashboard", Roles: []model.Role{model.RoleAdmin}},
	{Name: "gestionar-usuarios", Title: "Usuarios", Roles: []model.Role{model.RoleAdmin}},
	{Name: "gestionar-vendors", Title: "Vendors", Roles: []model.Role{model.RoleAdmin}},
	{Name: "comentarios", Title: "Comentarios", Roles: []model.Role{model.RoleAdmin, model.RoleVendor}},
	{Name: "perfil", Title: "Perfil", Roles: []model.Role{model.RoleUser, model.RoleVendor, model.RoleAdmin}},
}

// VisibleTabs はロールに見せるタブを宣言順で返す。
// 不明なロールはUSER扱い。
func VisibleTabs(role model.Role) []Tab {
	role = model.ParseRole(string(role))

	out := make([]Tab, 0, len(allTabs))
	for _, t := range allTabs {
		for _, r := range t.Roles {
			if r == role {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
