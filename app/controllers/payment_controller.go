package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// PaymentController handles checkout and order history.
type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

type intentInput struct {
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
}

// CreateIntent authorizes a charge and returns the client secret the
// frontend confirms with Stripe.js.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var in intentInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	secret, err := c.service.CreateIntent(r.Context(), in.Price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			response.Error(w, http.StatusBadRequest, "price must be positive")
			return
		}
		logger.WithCtx(r.Context()).Error("create payment intent failed", "error", err)
		response.Error(w, http.StatusBadGateway, "payment provider unavailable")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

type confirmInput struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,numeric,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	MenuItemIDs   []string `json:"menuItemIds"`
	CartIDs       []string `json:"cartIds"`
}

// Confirm records a paid order and clears the purchased cart entries.
func (c *PaymentController) Confirm(w http.ResponseWriter, r *http.Request) {
	var in confirmInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.service.ConfirmOrder(r.Context(), &models.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		MenuItemIDs:   in.MenuItemIDs,
		CartIDs:       in.CartIDs,
		Status:        "paid",
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		logger.WithCtx(r.Context()).Error("confirm order failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not record payment")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"paymentResult": map[string]interface{}{"insertedId": res.InsertedID},
		"deleteResult":  map[string]interface{}{"deletedCount": res.DeletedCount},
	})
}

// History returns the caller's payment history, newest first.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	payments, err := c.service.PaymentsByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("load payment history failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load payments")
		return
	}

	response.JSON(w, http.StatusOK, payments)
}
