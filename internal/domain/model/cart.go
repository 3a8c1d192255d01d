package model

// カートの1行。クライアント内だけに存在し、永続化しない。
// (MenuItemID, VendorID, Date) が同じ行は1行にまとめて数量を加算する。
type CartLine struct {
	MenuItemID int64
	ItemName   string
	Price      string // 10進文字列のまま
	VendorID   int64
	Date       string // YYYY-MM-DD。常設メニューは追加時に当日を入れる
	Quantity   int64
}
