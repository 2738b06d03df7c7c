package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/domain"
	"github.com/emojisense/emojisense-backend/internal/repository"
)

// ComboHandler serves the combo content corpus
type ComboHandler struct {
	repo repository.ComboRepository
}

// NewComboHandler creates a new ComboHandler
func NewComboHandler(repo repository.ComboRepository) *ComboHandler {
	return &ComboHandler{repo: repo}
}

// List returns combo records, optionally filtered
// @Summary      List combo records
// @Tags         combos
// @Produce      json
// @Param        category  query  string  false  "Category filter (e.g. SARCASM)"
// @Param        q         query  string  false  "Case-insensitive substring search"
// @Success      200  {object}  common.APIResponse{data=[]domain.Combo}
// @Router       /combos [get]
func (h *ComboHandler) List(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	var combos []*domain.Combo
	switch {
	case query != "":
		combos = h.repo.Search(query)
	case category != "":
		cat := domain.ComboCategory(category)
		if !cat.IsValid() {
			common.ErrorResponse(c, http.StatusBadRequest, "unknown category: "+category, nil)
			return
		}
		combos = h.repo.ByCategory(cat)
	default:
		combos = h.repo.All()
	}

	if combos == nil {
		combos = []*domain.Combo{}
	}

	common.SuccessResponse(c, combos, &common.Meta{
		Query:    query,
		Category: category,
		Total:    len(combos),
	})
}

// Get returns one combo record by slug
// @Summary      Get a combo record
// @Tags         combos
// @Produce      json
// @Param        slug  path  string  true  "Combo slug"
// @Success      200  {object}  common.APIResponse{data=domain.Combo}
// @Failure      404  {object}  common.APIResponse
// @Router       /combos/{slug} [get]
func (h *ComboHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	combo, ok := h.repo.BySlug(slug)
	if !ok {
		common.ErrorResponse(c, http.StatusNotFound, "combo not found: "+slug, nil)
		return
	}
	common.SuccessResponse(c, combo, nil)
}

// Related returns combos sharing the anchor's category
// @Summary      List related combos
// @Tags         combos
// @Produce      json
// @Param        slug   path   string  true   "Anchor combo slug"
// @Param        limit  query  int     false  "Maximum results"
// @Success      200  {object}  common.APIResponse{data=[]domain.Combo}
// @Router       /combos/{slug}/related [get]
func (h *ComboHandler) Related(c *gin.Context) {
	slug := c.Param("slug")

	limit := 0
	if val, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		limit = val
	}

	related := h.repo.Related(slug, limit)
	common.SuccessResponse(c, related, &common.Meta{Total: len(related)})
}

// Categories lists the combo categories present in the corpus
// @Summary      List combo categories
// @Tags         combos
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]string}
// @Router       /combos/categories [get]
func (h *ComboHandler) Categories(c *gin.Context) {
	common.SuccessResponse(c, h.repo.Categories(), nil)
}
