package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// UserController handles account management.
type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

type registerInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// Register stores a new account. Registering an email that already exists
// succeeds with a null insert marker so social logins can call it blindly.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.service.Register(r.Context(), in.Name, in.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("register failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not register user")
		return
	}

	if res.Existed {
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"insertedId": res.InsertedID})
}

// List returns every account. Admin only.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list users failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not list users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// Delete removes an account by id. Admin only.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		logger.WithCtx(r.Context()).Error("delete user failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete user")
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// Promote grants the admin role. Admin only.
func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	modified, err := c.service.Promote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		logger.WithCtx(r.Context()).Error("promote user failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not promote user")
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

// IsAdmin reports whether the caller's own account holds the admin role.
// Guarded by RequireSelf so one user cannot probe another's role.
func (c *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := c.service.IsAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("admin check failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not check role")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"admin": admin})
}
