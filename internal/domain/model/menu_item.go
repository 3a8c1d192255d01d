package model

// 日付ごとの提供枠。dateの無いMenuItemはavailabilitiesで展開されることがある。
type Availability struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Stock       *int64 `json:"stock,omitempty"`
}

// メニュー項目。priceはバックエンド同様に10進文字列のまま持つ。
// Dateが空なら常設メニュー（日付フィルタを素通りする）。
type MenuItem struct {
	ID             int64          `json:"id"`
	ItemName       string         `json:"itemName"`
	Description    string         `json:"description,omitempty"`
	Price          string         `json:"price"`
	VendorID       int64          `json:"vendorId"`
	VendorName     string         `json:"vendorName,omitempty"`
	IsAvailable    bool           `json:"isAvailable"`
	Stock          *int64         `json:"stock,omitempty"`
	Date           string         `json:"date,omitempty"` // ISO日付
	Availabilities []Availability `json:"availabilities,omitempty"`
}

// 在庫0または非公開は注文不可
func (m MenuItem) Orderable() bool {
	if !m.IsAvailable {
		return false
	}
	if m.Stock != nil && *m.Stock <= 0 {
		return false
	}
	return true
}
