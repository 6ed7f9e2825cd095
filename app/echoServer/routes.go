package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/MrPansu/BikeRental/app/echoServer/controller/auth"
	"github.com/MrPansu/BikeRental/app/echoServer/controller/bike"
	"github.com/MrPansu/BikeRental/app/echoServer/controller/customer"
	"github.com/MrPansu/BikeRental/app/echoServer/controller/transaction"
	"github.com/MrPansu/BikeRental/app/echoServer/controller/user"
)

type C struct {
	Auth        *auth.Controller
	Bike        *bike.Controller
	Customer    *customer.Controller
	Transaction *transaction.Controller
	User        *user.Controller
	JWTSecret   string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Auth
	api := e.Group("/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))

	// Bikes
	api.GET("/bikes", c.Bike.List)
	api.POST("/bikes", c.Bike.Create)
	api.PUT("/bikes/:id", c.Bike.Update)
	api.DELETE("/bikes/:id", c.Bike.Delete)

	// Customers
	api.GET("/customers", c.Customer.List)
	api.POST("/customers", c.Customer.Create)
	api.PUT("/customers/:id", c.Customer.Update)
	api.DELETE("/customers/:id", c.Customer.Delete)

	// Transactions
	api.GET("/transactions", c.Transaction.List)
	api.POST("/transactions", c.Transaction.Create)
	api.PUT("/transactions/:id", c.Transaction.Update)
	api.DELETE("/transactions/:id", c.Transaction.Delete)

	// Users (admin)
	api.GET("/users", c.User.List)
	api.POST("/users", c.User.Create)
	api.PUT("/users/:id", c.User.Update)
	api.DELETE("/users/:id", c.User.Delete)
}
