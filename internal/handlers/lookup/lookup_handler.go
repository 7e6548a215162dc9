package lookup

import (
	"errors"
	"net/http"
	"strconv"

	domain "lionscars-service/internal/domain/lookup"
	xerrors "lionscars-service/internal/pkg/errors"
	"lionscars-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// LookupHandler manages the brand and color selection lists.
type LookupHandler struct {
	repo domain.Repository
}

func NewLookupHandler(repo domain.Repository) *LookupHandler {
	return &LookupHandler{repo: repo}
}

func (h *LookupHandler) ListBrands(c *gin.Context) {
	brands, err := h.repo.ListBrands(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list brands", err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *LookupHandler) CreateBrand(c *gin.Context) {
	var req domain.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	b := &domain.Brand{Name: req.Name}
	if err := h.repo.CreateBrand(c.Request.Context(), b); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			response.Error(c, http.StatusConflict, "brand already exists", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create brand", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *LookupHandler) DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid brand ID", err)
		return
	}
	if err := h.repo.DeleteBrand(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete brand", err)
		return
	}
	response.Success(c, http.StatusOK, "brand deleted", nil)
}

func (h *LookupHandler) ListColors(c *gin.Context) {
	colors, err := h.repo.ListColors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list colors", err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func (h *LookupHandler) CreateColor(c *gin.Context) {
	var req domain.CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	col := &domain.Color{Name: req.Name, Hex: req.Hex}
	if err := h.repo.CreateColor(c.Request.Context(), col); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			response.Error(c, http.StatusConflict, "color already exists", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create color", err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *LookupHandler) DeleteColor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid color ID", err)
		return
	}
	if err := h.repo.DeleteColor(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete color", err)
		return
	}
	response.Success(c, http.StatusOK, "color deleted", nil)
}
