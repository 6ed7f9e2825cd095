// Package main bike rental API.
//
// @title           Bike Rental API
// @version         1.0
// @description     bike rental service (bikes, customers, rental transactions, users).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/MrPansu/BikeRental/app/echoServer"
	authctrl "github.com/MrPansu/BikeRental/app/echoServer/controller/auth"
	bikectrl "github.com/MrPansu/BikeRental/app/echoServer/controller/bike"
	customerctrl "github.com/MrPansu/BikeRental/app/echoServer/controller/customer"
	transactionctrl "github.com/MrPansu/BikeRental/app/echoServer/controller/transaction"
	userctrl "github.com/MrPansu/BikeRental/app/echoServer/controller/user"
	"github.com/MrPansu/BikeRental/app/echoServer/validation"
	"github.com/MrPansu/BikeRental/config"
	bikerepo "github.com/MrPansu/BikeRental/repository/bike"
	customerrepo "github.com/MrPansu/BikeRental/repository/customer"
	transactionrepo "github.com/MrPansu/BikeRental/repository/transaction"
	userrepo "github.com/MrPansu/BikeRental/repository/user"
	authsvc "github.com/MrPansu/BikeRental/service/auth"
	bikesvc "github.com/MrPansu/BikeRental/service/bike"
	customersvc "github.com/MrPansu/BikeRental/service/customer"
	"github.com/MrPansu/BikeRental/service/inventory"
	transactionsvc "github.com/MrPansu/BikeRental/service/transaction"
	usersvc "github.com/MrPansu/BikeRental/service/user"
	"github.com/MrPansu/BikeRental/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bikerepo.New(db)
	cr := customerrepo.New(db)
	tr := transactionrepo.New(db)
	ur := userrepo.New(db)

	// services
	ledger := inventory.New(br)
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := bikesvc.New(br)
	cs := customersvc.New(cr)
	ts := transactionsvc.New(tr, br, ledger, log)
	us := usersvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bikeC := &bikectrl.Controller{Svc: bs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	transactionC := &transactionctrl.Controller{Svc: ts, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, AuthSvc: as, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Bike:        bikeC,
		Customer:    customerC,
		Transaction: transactionC,
		User:        userC,
		JWTSecret:   cfg.JWTSecret,
	})

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
