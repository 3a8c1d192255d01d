package model

type Role string

const (
	RoleUser   Role = "USER"
	RoleVendor Role = "VENDOR"
	RoleAdmin  Role = "ADMIN"
)

// 不明なロールはUSER扱い
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleVendor, RoleAdmin:
		return Role(s)
	default:
		return RoleUser
	}
}

// バックエンドのユーザー。登録・削除はサーバー側の仕事。
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	VendorID  *int64 `json:"vendorId,omitempty"` // VENDORロールのみ
}
