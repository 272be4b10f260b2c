package models

type SignupRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ToggleFavoriteRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type AddAddressRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	ZipCode       string `json:"zip_code" binding:"required"`
	Country       string `json:"country" binding:"required"`
	IsDefault     bool   `json:"is_default"`
}

type AddPaymentMethodRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	CardHolderName string `json:"card_holder_name" binding:"required"`
	ExpiryDate     string `json:"expiry_date" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	IsDefault      bool   `json:"is_default"`
}

type SelectRequest struct {
	ID string `json:"id" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
