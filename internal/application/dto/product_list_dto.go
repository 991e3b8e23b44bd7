package dto

// ProductListResponse respuesta de GET /api/view/products.
type ProductListResponse struct {
	Items  []ProductPayload `json:"items"`
	Count  int              `json:"count"`
	Loaded bool             `json:"loaded"`
}
