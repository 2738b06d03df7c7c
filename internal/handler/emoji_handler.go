package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/repository"
)

// EmojiHandler serves the emoji content corpus
type EmojiHandler struct {
	repo repository.EmojiRepository
}

// NewEmojiHandler creates a new EmojiHandler
func NewEmojiHandler(repo repository.EmojiRepository) *EmojiHandler {
	return &EmojiHandler{repo: repo}
}

// List returns emoji records, optionally filtered
// @Summary      List emoji records
// @Description  Lists the emoji corpus, filterable by category or free-text query
// @Tags         emojis
// @Produce      json
// @Param        category  query  string  false  "Category filter (e.g. SMILEYS_EMOTION)"
// @Param        q         query  string  false  "Case-insensitive substring search"
// @Success      200  {object}  common.APIResponse{data=[]domain.Emoji}
// @Router       /emojis [get]
func (h *EmojiHandler) List(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	var emojis []*domain.Emoji
	switch {
	case query != "":
		emojis = h.repo.Search(query)
	case category != "":
		cat := domain.EmojiCategory(category)
		if !cat.IsValid() {
			common.ErrorResponse(c, http.StatusBadRequest, "unknown category: "+category, nil)
			return
		}
		emojis = h.repo.ByCategory(cat)
	default:
		emojis = h.repo.All()
	}

	if emojis == nil {
		emojis = []*domain.Emoji{}
	}

	common.SuccessResponse(c, emojis, &common.Meta{
		Query:    query,
		Category: category,
		Total:    len(emojis),
	})
}

// Get returns one emoji record by slug
// @Summary      Get an emoji record
// @Tags         emojis
// @Produce      json
// @Param        slug  path  string  true  "Emoji slug"
// @Success      200  {object}  common.APIResponse{data=domain.Emoji}
// @Failure      404  {object}  common.APIResponse
// @Router       /emojis/{slug} [get]
func (h *EmojiHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	emoji, ok := h.repo.BySlug(slug)
	if !ok {
		common.ErrorResponse(c, http.StatusNotFound, "emoji not found: "+slug, nil)
		return
	}
	common.SuccessResponse(c, emoji, nil)
}

// Related returns emojis sharing the anchor's category
// @Summary      List related emojis
// @Description  Same-category records, excluding the anchor, capped at limit (default 6)
// @Tags         emojis
// @Produce      json
// @Param        slug   path   string  true   "Anchor emoji slug"
// @Param        limit  query  int     false  "Maximum results"
// @Success      200  {object}  common.APIResponse{data=[]domain.Emoji}
// @Router       /emojis/{slug}/related [get]
func (h *EmojiHandler) Related(c *gin.Context) {
	slug := c.Param("slug")

	limit := 0
	if val, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		limit = val
	}

	related := h.repo.Related(slug, limit)
	common.SuccessResponse(c, related, &common.Meta{Total: len(related)})
}

// Categories lists the distinct categories in the loaded corpus
// @Summary      List emoji categories
// @Tags         emojis
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /categories [get]
func (h *EmojiHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.repo.Categories(), nil)
}
