package helper

import (
	"errors"
	"net/http"
	"testing"

	"blog-platform/models"

	"github.com/stretchr/testify/assert"
)

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{Message: "x"}))
	assert.Equal(t, http.StatusForbidden, h.GetStatusCode(models.ErrorForbidden{Message: "x"}))
	assert.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{Message: "x"}))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorBadRequest{Message: "x"}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(models.ErrorInternalServer{Message: "x"}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("plain")))
}

func TestGeneratePaging(t *testing.T) {
	h := &HTTPHelper{}

	paging := h.GeneratePaging(models.PaginationParams{Page: 2, PerPage: 10}, 25, []string{"a"})

	assert.Equal(t, 2, paging.Page)
	assert.Equal(t, 10, paging.PerPage)
	assert.Equal(t, int64(25), paging.Total)
	assert.Equal(t, 3, paging.TotalPages)

	empty := h.GeneratePaging(models.PaginationParams{Page: 1, PerPage: 10}, 0, nil)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "full_name", Underscore("FullName"))
	assert.Equal(t, "email", Underscore("Email"))
	assert.Equal(t, "blog_post_i_d", Underscore("BlogPostID"))
}
