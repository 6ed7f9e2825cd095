package customer

type CreateCustomerReq struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Selfie  string `json:"selfie" validate:"required"`
}

type UpdateCustomerReq struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Selfie  string `json:"selfie"`
}
