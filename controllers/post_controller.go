package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pressline/blogapi/models"
	"github.com/pressline/blogapi/utils"
)

// PostController manages CRUD operations for posts, including the upsert
// workflow that resolves media, category and tag references.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// postPayload is the JSON body accepted by create and update. Image carries a
// media id, Categories carries category ids and Tags carries tag names.
type postPayload struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Image      *uint    `json:"image"`
	Categories []uint   `json:"categories"`
	Tags       []string `json:"tags"`
}

// Show returns a single post with its author, image, categories and tags.
func (p *PostController) Show(ctx *gin.Context) {
	postID := ctx.Param("id")

	if b, ok := utils.CacheGetBytes("cache:post:detail:" + postID); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	err := p.db.Preload("Author").Preload("Image").Preload("Categories").Preload("Tags").
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		respondError(ctx, err, "failed to load post")
		return
	}

	utils.CacheSetJSON("cache:post:detail:"+postID, post, time.Hour)
	ctx.JSON(http.StatusOK, post)
}

// List returns all posts without pagination.
func (p *PostController) List(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:post:list"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var posts []models.Post
	err := p.db.Preload("Author").Preload("Image").Preload("Categories").Preload("Tags").
		Order("id").Find(&posts).Error
	if err != nil {
		respondError(ctx, err, "failed to list posts")
		return
	}

	utils.CacheSetJSON("cache:post:list", posts, time.Hour)
	ctx.JSON(http.StatusOK, posts)
}

// Upsert creates a post, or updates it when an id is present in the path.
// The whole workflow runs inside one transaction: a missing media or category
// reference, or a validation failure, rolls everything back including tags
// created for this request.
func (p *PostController) Upsert(ctx *gin.Context) {
	var req postPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	postID := ctx.Param("id")

	var post models.Post
	err := p.db.Transaction(func(tx *gorm.DB) error {
		if postID != "" {
			if err := tx.First(&post, postID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("Post not found")
				}
				return err
			}
		}

		// Author and date are stamped on create and update alike; Date means
		// "last modified".
		post.AuthorID = userID
		post.Date = time.Now()
		post.Title = utils.Sanitize(strings.TrimSpace(req.Title))
		post.Content = utils.Sanitize(req.Content)

		// An absent image field leaves the current image in place; an explicit
		// zero clears it.
		if req.Image != nil {
			if *req.Image == 0 {
				post.ImageID = nil
				post.Image = nil
			} else {
				var media models.Media
				if err := tx.First(&media, *req.Image).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return notFound(fmt.Sprintf("Media not found: %d", *req.Image))
					}
					return err
				}
				post.ImageID = &media.ID
				post.Image = &media
			}
		}

		categories, err := p.resolveCategories(tx, req.Categories)
		if err != nil {
			return err
		}

		tags, err := p.resolveTags(tx, req.Tags)
		if err != nil {
			return err
		}

		if msg := utils.ValidateStruct(&post); msg != "" {
			return badRequest(msg)
		}

		if err := tx.Omit("Author", "Image", "Categories", "Tags").Save(&post).Error; err != nil {
			return err
		}
		// Replace swaps the whole relation set in one shot, so a half-applied
		// category list can never be observed.
		if err := tx.Model(&post).Association("Categories").Replace(&categories); err != nil {
			return err
		}
		return tx.Model(&post).Association("Tags").Replace(&tags)
	})
	if err != nil {
		respondError(ctx, err, "failed to save post")
		return
	}

	err = p.db.Preload("Author").Preload("Image").Preload("Categories").Preload("Tags").
		First(&post, post.ID).Error
	if err != nil {
		respondError(ctx, err, "failed to load post")
		return
	}

	utils.InvalidateByPrefix("cache:post:")

	if postID == "" {
		utils.Result(ctx, http.StatusCreated, "Post created", post)
		return
	}
	utils.Result(ctx, http.StatusOK, "Post updated", post)
}

// Delete removes a post along with its relation rows.
func (p *PostController) Delete(ctx *gin.Context) {
	postID := ctx.Param("id")

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		respondError(ctx, err, "failed to load post")
		return
	}

	// take the category/tag join rows with the post; authors and media stay
	if err := p.db.Select("Categories", "Tags").Delete(&post).Error; err != nil {
		respondError(ctx, err, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix("cache:post:")
	utils.Message(ctx, http.StatusOK, "Post deleted")
}

// resolveCategories loads every referenced category, deduplicated, failing
// the workflow on the first missing id.
func (p *PostController) resolveCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(ids))
	for _, categoryID := range utils.UniqueUint(ids) {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound(fmt.Sprintf("Category not found: %d", categoryID))
			}
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// resolveTags looks tags up by exact name, creating unknown ones inside the
// current transaction so a later failure rolls them back too.
func (p *PostController) resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range utils.UniqueStrings(names) {
		var tag models.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
