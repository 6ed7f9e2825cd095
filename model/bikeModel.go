// model/bike.go
package model

type Bike struct {
	ID      int64   `json:"id"`
	Brand   string  `json:"brand"`
	Price   float64 `json:"price"`
	Amount  int64   `json:"amount"`
	Picture string  `json:"picture"`
}
