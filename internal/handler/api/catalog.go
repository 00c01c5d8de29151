package api

import (
	"net/http"

	"zavvi-web/internal/domain/catalog"
	resdto "zavvi-web/internal/handler/dto/response"
	"zavvi-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog   CatalogService
	locations LocationService
}

func NewCatalogHandler(catalog CatalogService, locations LocationService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, locations: locations}
}

// @Summary Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Category
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	list, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Shops
// @Description Shops at the selected location unless location is given
// @Tags catalog
// @Produce json
// @Param category query string false "Category id"
// @Param search query string false "Search text"
// @Param location query string false "Location id"
// @Success 200 {array} catalog.Shop
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /shops [get]
func (h *CatalogHandler) Shops(c *gin.Context) {
	q := catalog.ShopQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Location: c.DefaultQuery("location", h.locations.SelectedLocationID()),
	}
	list, err := h.catalog.Shops(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Shop
// @Tags catalog
// @Produce json
// @Param id path string true "Shop id"
// @Success 200 {object} catalog.Shop
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /shops/{id} [get]
func (h *CatalogHandler) Shop(c *gin.Context) {
	shop, err := h.catalog.Shop(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// @Summary Deals of a shop
// @Tags catalog
// @Produce json
// @Param id path string true "Shop id"
// @Success 200 {array} coupon.Deal
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /shops/{id}/deals [get]
func (h *CatalogHandler) Deals(c *gin.Context) {
	deals, err := h.catalog.DealsByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

// @Summary Warm a shop page
// @Tags catalog
// @Param id path string true "Shop id"
// @Success 202 "Accepted"
// @Router /shops/{id}/prefetch [post]
func (h *CatalogHandler) Prefetch(c *gin.Context) {
	h.catalog.PrefetchShop(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusAccepted)
}

// @Summary Home view
// @Description Featured shops and categories for the selected location
// @Tags catalog
// @Produce json
// @Success 200 {object} listing.Home
// @Failure 428 {object} httperr.Response "no location selected"
// @Router /home [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	home, err := h.catalog.Home(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// @Summary Invalidate cached reads
// @Description Drops entries whose key contains pattern; no pattern clears everything
// @Tags cache
// @Produce json
// @Param pattern query string false "Key substring"
// @Success 200 {object} resdto.InvalidateResponse
// @Router /cache [delete]
func (h *CatalogHandler) Invalidate(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.InvalidateResponse{Removed: h.catalog.Invalidate(c.Query("pattern"))})
}
