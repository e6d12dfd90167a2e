package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/repositories"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// CartController handles a user's shopping cart.
type CartController struct {
	repo *repositories.CartRepository
}

func NewCartController(repo *repositories.CartRepository) *CartController {
	return &CartController{repo: repo}
}

// ByEmail returns the cart entries for ?email=.
func (c *CartController) ByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := c.repo.ByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("load cart failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load cart")
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type cartInput struct {
	Email      string  `json:"email" validate:"required,email"`
	MenuItemID string  `json:"menuId" validate:"required"`
	Name       string  `json:"name" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"required,numeric,gt=0"`
	Image      string  `json:"image" validate:"nullable,max=2000"`
}

// Add puts a menu item in a user's cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in cartInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.repo.Insert(r.Context(), &models.CartItem{
		Email:      in.Email,
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		Price:      in.Price,
		Image:      in.Image,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("add cart item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not add to cart")
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}

// Remove deletes one cart entry.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := c.repo.DeleteByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("remove cart item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not remove cart item")
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
