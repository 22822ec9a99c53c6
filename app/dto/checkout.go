package dto

type CheckoutResponse struct {
	OrderReference string `json:"order_reference"`
	SessionID      string `json:"session_id"`
	RedirectURL    string `json:"redirect_url"`
}

type ConfirmRequest struct {
	SessionID string `json:"session_id"`
}

type OrderItemResponse struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitCents int64  `json:"unit_cents"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	Reference  string              `json:"reference"`
	Status     string              `json:"status"`
	TotalCents int64               `json:"total_cents"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  int64               `json:"created_at"`
}
