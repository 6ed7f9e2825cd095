package customer

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MrPansu/BikeRental/model"
	customersvc "github.com/MrPansu/BikeRental/service/customer"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/customers
func (h *Controller) Create(c echo.Context) error {
	var req CreateCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "please provide all data"})
	}

	cust := &model.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address, Selfie: req.Selfie}
	if err := h.Svc.Create(c.Request().Context(), cust); err != nil {
		if err == customersvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "customer added", "data": cust})
}

// PUT /v1/customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	cust := &model.Customer{ID: id, Name: req.Name, Phone: req.Phone, Address: req.Address, Selfie: req.Selfie}
	ok, err := h.Svc.Update(c.Request().Context(), cust)
	if err != nil {
		if err == customersvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("customer update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer updated", "data": cust})
}

// DELETE /v1/customers/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	ok, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("customer delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer deleted"})
}
