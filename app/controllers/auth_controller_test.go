package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/controllers"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
)

func TestIssueToken(t *testing.T) {
	authority, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)
	c := controllers.NewAuthController(authority)

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"alice@example.com"}`))
	rec := httptest.NewRecorder()

	c.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	claims, err := authority.Verify(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestIssueTokenRejectsInvalidEmail(t *testing.T) {
	authority, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)
	c := controllers.NewAuthController(authority)

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()

	c.IssueToken(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIssueTokenRejectsMalformedBody(t *testing.T) {
	authority, err := auth.NewAuthority([]byte("test-secret"))
	require.NoError(t, err)
	c := controllers.NewAuthController(authority)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	c.IssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
