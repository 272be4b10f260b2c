package models

type Address struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	IsDefault     bool   `json:"is_default"`
}

type PaymentMethod struct {
	ID             string `json:"id"`
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"-"`
	IsDefault      bool   `json:"is_default"`
}

type OrderSummary struct {
	OrderID         string        `json:"order_id"`
	Items           []CartItem    `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Shipping        float64       `json:"shipping"`
	Total           float64       `json:"total"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	OrderDate       string        `json:"order_date"`
	OrderStatus     string        `json:"order_status"`
}
