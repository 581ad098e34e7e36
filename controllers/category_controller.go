package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pressline/blogapi/models"
	"github.com/pressline/blogapi/utils"
)

// CategoryController manages CRUD operations for categories.
type CategoryController struct {
	db *gorm.DB
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db}
}

// Show returns a single category.
func (c *CategoryController) Show(ctx *gin.Context) {
	var category models.Category
	if err := c.db.First(&category, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Category not found")
			return
		}
		respondError(ctx, err, "failed to load category")
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// List returns all categories without pagination.
func (c *CategoryController) List(ctx *gin.Context) {
	var categories []models.Category
	if err := c.db.Order("id").Find(&categories).Error; err != nil {
		respondError(ctx, err, "failed to list categories")
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// Upsert creates a category, or updates it when an id is present in the path.
func (c *CategoryController) Upsert(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	categoryID := ctx.Param("id")

	var category models.Category
	if categoryID != "" {
		if err := c.db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Message(ctx, http.StatusNotFound, "Category not found")
				return
			}
			respondError(ctx, err, "failed to load category")
			return
		}
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description

	if msg := utils.ValidateStruct(&category); msg != "" {
		utils.Message(ctx, http.StatusBadRequest, msg)
		return
	}

	if err := c.db.Save(&category).Error; err != nil {
		respondError(ctx, err, "failed to save category")
		return
	}

	message := "Category created"
	if categoryID != "" {
		message = "Category updated"
	}
	utils.Result(ctx, http.StatusOK, message, category)
}

// Delete removes a category. Posts referencing it keep working; orphaned
// join rows are the store's responsibility.
func (c *CategoryController) Delete(ctx *gin.Context) {
	var category models.Category
	if err := c.db.First(&category, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Category not found")
			return
		}
		respondError(ctx, err, "failed to load category")
		return
	}

	if err := c.db.Delete(&category).Error; err != nil {
		respondError(ctx, err, "failed to delete category")
		return
	}
	utils.Message(ctx, http.StatusOK, "Category deleted")
}
