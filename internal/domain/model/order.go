package model

type OrderStatus string

const (
	OrderStatusPendientePago         OrderStatus = "PENDIENTE_PAGO"
	OrderStatusPendienteVerificacion OrderStatus = "PENDIENTE_VERIFICACION"
	OrderStatusPagado                OrderStatus = "PAGADO"
	OrderStatusListoParaRecojo       OrderStatus = "LISTO_PARA_RECOJO"
	OrderStatusCompletado            OrderStatus = "COMPLETADO"
	OrderStatusCancelado             OrderStatus = "CANCELADO"
)

// 注文作成リクエストの明細
type OrderItem struct {
	MenuItemID int64  `json:"menuItemId"`
	Quantity   int64  `json:"quantity"`
	Date       string `json:"date,omitempty"`
}

// サーバーが返す注文明細。menuItemIdはフィードバック作成に必要。
type OrderDetail struct {
	ID         int64  `json:"id"`
	ItemName   string `json:"itemName"`
	Quantity   int64  `json:"quantity"`
	Price      string `json:"price"`
	MenuItemID int64  `json:"menuItemId"`
}

type Order struct {
	ID            int64         `json:"id"`
	Status        OrderStatus   `json:"status"`
	UserID        int64         `json:"userId"`
	UserName      string        `json:"userName,omitempty"`
	VendorID      int64         `json:"vendorId"`
	VendorName    string        `json:"vendorName,omitempty"`
	PickupCode    string        `json:"pickupCode,omitempty"`    // 支払い後に発行される受取コード
	PaymentMethod string        `json:"paymentMethod,omitempty"` // YAPE / PLIN
	CreatedAt     string        `json:"createdAt,omitempty"`     // ISOタイムスタンプ
	Items         []OrderDetail `json:"items,omitempty"`
}

// 状態遷移はサーバー主導。クライアントから起こせる操作だけ判定する。

// キャンセルは支払い前のみ
func (o Order) CanCancel() bool {
	return o.Status == OrderStatusPendientePago
}

// 受取準備完了（VENDOR操作）はPAGADOから
func (o Order) CanMarkReady() bool {
	return o.Status == OrderStatusPagado
}

// 受け渡し完了（VENDOR操作）はLISTO_PARA_RECOJOから
func (o Order) CanMarkCompleted() bool {
	return o.Status == OrderStatusListoParaRecojo
}

// COMPLETADO / CANCELADO からは遷移しない
func (o Order) IsTerminal() bool {
	return o.Status == OrderStatusCompletado || o.Status == OrderStatusCancelado
}
