// Package controllers maps HTTP requests onto the service layer and writes
// the wire responses the frontend already consumes.
package controllers

import (
	"net/http"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/bind"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// AuthController issues API tokens.
type AuthController struct {
	authority *auth.Authority
}

func NewAuthController(authority *auth.Authority) *AuthController {
	return &AuthController{authority: authority}
}

type tokenInput struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueToken mints a bearer token for the given email. Identity is asserted
// by the frontend's social login; the token only carries the email claim.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var in tokenInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.authority.Issue(in.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
