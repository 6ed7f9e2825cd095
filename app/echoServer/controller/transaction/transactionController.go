package transaction

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	ts "github.com/MrPansu/BikeRental/service/transaction"
)

type Controller struct {
	Svc ts.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/transactions
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("transaction list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/transactions
func (h *Controller) Create(c echo.Context) error {
	var req CreateTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), ts.CreateInput{
		CustomerID: req.CustomerID,
		BikeID:     req.BikeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ReturnTime: req.ReturnTime,
		Assurance:  req.Assurance,
		Fine:       req.Fine,
	})
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "please provide all data"})
		case ts.ErrNoStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no stock available"})
		default:
			h.Log.Error("transaction create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "new transaction added", "data": out})
}

// PUT /v1/transactions/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Update(c.Request().Context(), id, ts.UpdateInput{
		CustomerID: req.CustomerID,
		BikeID:     req.BikeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ReturnTime: req.ReturnTime,
		Assurance:  req.Assurance,
		Fine:       req.Fine,
		Status:     req.status(),
	})
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no transaction found"})
		case ts.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("transaction update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "transaction updated", "data": out})
}

// DELETE /v1/transactions/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch ts.Code(err) {
		case ts.ErrNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no transaction found"})
		default:
			h.Log.Error("transaction delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "transaction deleted"})
}
