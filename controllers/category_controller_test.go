package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/blogapi/models"
)

func TestCategoryCreateThenShow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/category", "", map[string]string{
		"name":        "Good news",
		"description": "Only good news",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Message string          `json:"message"`
		Result  models.Category `json:"result"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "Category created", created.Message)
	assert.Equal(t, "Good news", created.Result.Name)
	assert.Equal(t, "Only good news", created.Result.Description)
	require.NotZero(t, created.Result.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/category/%d", created.Result.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var shown models.Category
	decodeBody(t, w, &shown)
	assert.Equal(t, created.Result.Name, shown.Name)
	assert.Equal(t, created.Result.Description, shown.Description)
}

func TestCategoryShowMissing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/category/999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Category not found"}`, w.Body.String())
}

func TestCategoryList(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/category", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	decodeBody(t, w, &categories)
	// fixtures seed two categories
	require.Len(t, categories, 2)
	assert.Equal(t, "Good news", categories[0].Name)
	assert.Equal(t, "Bad news", categories[1].Name)
}

func TestCategoryUpdate(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/category/1", "", map[string]string{
		"name":        "Better news",
		"description": "Strictly better",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string          `json:"message"`
		Result  models.Category `json:"result"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Category updated", resp.Message)
	assert.Equal(t, "Better news", resp.Result.Name)

	var stored models.Category
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "Better news", stored.Name)
}

func TestCategoryUpdateMissing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/category/999", "", map[string]string{
		"name": "Nope",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Category not found"}`, w.Body.String())
}

func TestCategoryValidation(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/category", "", map[string]string{
		"name": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "invalid payload must not create a category")
}

func TestCategoryDelete(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/category/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Category deleted"}`, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryDeleteMissing(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/category/999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "store must be unchanged")
}
