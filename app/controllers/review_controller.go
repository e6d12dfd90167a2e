package controllers

import (
	"net/http"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/repositories"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// ReviewController handles customer reviews.
type ReviewController struct {
	repo *repositories.ReviewRepository
}

func NewReviewController(repo *repositories.ReviewRepository) *ReviewController {
	return &ReviewController{repo: repo}
}

// All returns every review.
func (c *ReviewController) All(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.repo.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list reviews failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load reviews")
		return
	}
	response.JSON(w, http.StatusOK, reviews)
}

type reviewInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Details string  `json:"details" validate:"required,max=2000"`
	Rating  float64 `json:"rating" validate:"required,numeric,min=1,max=5"`
}

// Create stores a new review.
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	var in reviewInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.repo.Insert(r.Context(), &models.Review{
		Name:    in.Name,
		Details: in.Details,
		Rating:  in.Rating,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("create review failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not store review")
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}
