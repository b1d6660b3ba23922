package transport

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type MetadataPayload struct {
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Specifications map[string]interface{} `json:"specifications"`
}

type CreateProductRequest struct {
	Product  ProductPayload  `json:"product"`
	Metadata MetadataPayload `json:"metadata"`
	Stock    int             `json:"stock"`
}

type CreateOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID        uint              `json:"user_id"`
	Items         []CreateOrderItem `json:"items"`
	PaymentMethod string            `json:"payment_method"`
}
