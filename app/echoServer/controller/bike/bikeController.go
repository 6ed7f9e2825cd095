package bike

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/MrPansu/BikeRental/model"
	bikesvc "github.com/MrPansu/BikeRental/service/bike"
)

type Controller struct {
	Svc bikesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/bikes
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("bike list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/bikes
func (h *Controller) Create(c echo.Context) error {
	var req CreateBikeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "please provide all data"})
	}

	b := &model.Bike{Brand: req.Brand, Price: req.Price, Amount: req.Amount, Picture: req.Picture}
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		if err == bikesvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("bike create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "bike added", "data": b})
}

// PUT /v1/bikes/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateBikeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	b := &model.Bike{ID: id, Brand: req.Brand, Price: req.Price, Amount: req.Amount, Picture: req.Picture}
	ok, err := h.Svc.Update(c.Request().Context(), b)
	if err != nil {
		if err == bikesvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("bike update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bike updated", "data": b})
}

// DELETE /v1/bikes/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	ok, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("bike delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bike deleted"})
}
