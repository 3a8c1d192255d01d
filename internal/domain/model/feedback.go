package model

type Feedback struct {
	ID         int64  `json:"id"`
	Rating     int    `json:"rating"` // 1〜5
	Comment    string `json:"comment,omitempty"`
	ItemName   string `json:"itemName,omitempty"`
	VendorName string `json:"vendorName,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	OrderID    int64  `json:"orderId,omitempty"`
	MenuItemID int64  `json:"menuItemId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
