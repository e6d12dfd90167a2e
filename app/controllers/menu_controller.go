package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/repositories"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/cache"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/storage"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute

	maxImageBytes = 5 << 20
)

// MenuController handles the menu catalog and image uploads.
type MenuController struct {
	repo *repositories.MenuRepository
	disk storage.Disk
}

func NewMenuController(repo *repositories.MenuRepository, disk storage.Disk) *MenuController {
	return &MenuController{repo: repo, disk: disk}
}

// All returns the full menu, served from cache when warm.
func (c *MenuController) All(w http.ResponseWriter, r *http.Request) {
	var items []models.MenuItem
	if cache.Get(r.Context(), menuCacheKey, &items) {
		response.JSON(w, http.StatusOK, items)
		return
	}

	items, err := c.repo.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list menu failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load menu")
		return
	}

	if err := cache.Set(r.Context(), menuCacheKey, items, menuCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("menu cache write failed", "error", err)
	}
	response.JSON(w, http.StatusOK, items)
}

// One returns a single menu item.
func (c *MenuController) One(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	item, err := c.repo.FindByID(r.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		response.NotFound(w)
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("load menu item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load menu item")
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type menuInput struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Category string  `json:"category" validate:"required,max=100"`
	Price    float64 `json:"price" validate:"required,numeric,gt=0"`
	Recipe   string  `json:"recipe" validate:"nullable,max=2000"`
	Image    string  `json:"image" validate:"nullable,max=2000"`
}

// Create adds a menu item. Admin only.
func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var in menuInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.repo.Insert(r.Context(), &models.MenuItem{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Recipe:   in.Recipe,
		Image:    in.Image,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("create menu item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create menu item")
		return
	}

	c.invalidate(r)
	response.JSON(w, http.StatusCreated, map[string]interface{}{"insertedId": id})
}

// Update overwrites a menu item's editable fields. Admin only.
func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var in menuInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	matched, err := c.repo.UpdateByID(r.Context(), id, &models.MenuItem{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Recipe:   in.Recipe,
		Image:    in.Image,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("update menu item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update menu item")
		return
	}
	if matched == 0 {
		response.NotFound(w)
		return
	}

	c.invalidate(r)
	response.JSON(w, http.StatusOK, map[string]int64{"modifiedCount": matched})
}

// Delete removes a menu item. Admin only.
func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	deleted, err := c.repo.DeleteByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("delete menu item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete menu item")
		return
	}

	c.invalidate(r)
	response.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// UploadImage stores a dish photo on the configured disk and points the
// menu item's image URL at it. Admin only. Multipart field name: "image".
func (c *MenuController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(w, http.StatusBadRequest, "unsupported image type")
		return
	}

	path := fmt.Sprintf("menu/%s/%s%s", id.Hex(), uuid.NewString(), ext)
	if err := c.disk.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("store menu image failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	url := c.disk.URL(path)
	matched, err := c.repo.UpdateImage(r.Context(), id, url)
	if err != nil {
		logger.WithCtx(r.Context()).Error("update menu image failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update menu item")
		return
	}
	if matched == 0 {
		// Item vanished between upload and update; drop the orphan file.
		_ = c.disk.Delete(path)
		response.NotFound(w)
		return
	}

	c.invalidate(r)
	response.JSON(w, http.StatusOK, map[string]string{"image": url})
}

func (c *MenuController) invalidate(r *http.Request) {
	if err := cache.Del(r.Context(), menuCacheKey); err != nil {
		logger.WithCtx(r.Context()).Warn("menu cache invalidation failed", "error", err)
	}
}
