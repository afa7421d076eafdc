package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create package
// @Description Bundle a hotel, flight and taxi over a date range
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package request"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages [post]
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.MakePackage(c.Request.Context(), req)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPackageView(view))
}

// @Summary Get package
// @Description Get package by ID
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.catalogQueries.GetPackage(c.Request.Context(), id)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary List packages
// @Description List the whole package catalog
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PackageResponse
// @Failure 401 {object} map[string]string
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	views, err := h.catalogQueries.ListPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary Edit package
// @Description Patch package references or dates; the price is recomputed and any discount dropped
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Fields to change"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [patch]
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.EditPackage(c.Request.Context(), id, req)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Delete package
// @Description Remove a package from the catalog
// @Tags packages
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [delete]
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.DeletePackage(c.Request.Context(), id); err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Apply discount
// @Description Override the charged price of a package by a percentage
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param request body reqdto.ApplyDiscountRequest true "Discount percentage"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id}/discount [post]
func (h *CatalogHandler) ApplyDiscount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.ApplyDiscount(c.Request.Context(), id, req.Percent)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

func (h *CatalogHandler) renderCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Package not found",
		})
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Referenced product not found",
		})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
	case errors.Is(err, errs.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid discount percentage",
		})
	case errors.Is(err, errs.ErrInvalidInventory):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return 0, false
	}
	return id, true
}
