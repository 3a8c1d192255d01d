package model

// 食堂の売店。管理画面（ADMIN）でCRUD。
type Vendor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Ubication   string `json:"ubication,omitempty"`   // 場所（屋台・店舗）
	OpeningTime string `json:"openingTime,omitempty"` // HH:mm
	ClosingTime string `json:"closingTime,omitempty"` // HH:mm
}
