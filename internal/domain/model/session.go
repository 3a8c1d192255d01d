package model

// ログイン済みの本人情報。sessionストアが唯一の書き手。
// tokenと一緒にJSONでローカル保存される。
type Session struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	VendorID  *int64 `json:"vendorId,omitempty"`
	Token     string `json:"token"`
}

// 保存データとして最低限成立しているか
func (s Session) Valid() bool {
	return s.ID > 0 && s.Email != "" && s.Token != ""
}
