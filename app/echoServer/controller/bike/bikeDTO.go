package bike

type CreateBikeReq struct {
	Brand   string  `json:"brand" validate:"required"`
	Price   float64 `json:"price" validate:"required,gte=0"`
	Amount  int64   `json:"amount" validate:"required,gte=0"`
	Picture string  `json:"picture" validate:"required"`
}

type UpdateBikeReq struct {
	Brand   string  `json:"brand" validate:"required"`
	Price   float64 `json:"price" validate:"gte=0"`
	Amount  int64   `json:"amount" validate:"gte=0"`
	Picture string  `json:"picture"`
}
