package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"listingparser/internal/database"
	"listingparser/internal/listings"
	"listingparser/internal/models"
	"listingparser/internal/scraper"
	"listingparser/internal/util"
	"listingparser/internal/validation"
	"listingparser/internal/vehicle"
)

type ListingHandler struct {
	svc *listings.Service
}

func NewListingHandler(svc *listings.Service) *ListingHandler {
	return &ListingHandler{svc: svc}
}

// CreateListingRequest is a captured listing as sent by a client
type CreateListingRequest struct {
	Title      string `json:"title" binding:"required"`
	Price      string `json:"price"`
	Location   string `json:"location"`
	DatePosted string `json:"datePosted"`
	SellerName string `json:"sellerName"`
	Mileage    string `json:"mileage"`
	URL        string `json:"url"`
	Year       string `json:"year"`
	Make       string `json:"make"`
	Model      string `json:"model"`
}

type FetchRequest struct {
	URL string `json:"url" binding:"required"`
}

// Create parses and stores a listing
// @Summary Save a listing
// @Description Parses the listing title, applies confident year/make/model values and stores the listing.
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body CreateListingRequest true "Listing"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid listing"
// @Router /api/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	title, err := validation.NormalizeTitle(req.Title)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.URL != "" {
		if err := validation.ValidateListingURL(req.URL); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	saved, err := h.svc.Capture(models.Listing{
		Title:      title,
		Price:      req.Price,
		Location:   req.Location,
		DatePosted: req.DatePosted,
		SellerName: req.SellerName,
		Mileage:    req.Mileage,
		URL:        req.URL,
		Year:       req.Year,
		Make:       req.Make,
		Model:      req.Model,
	})
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to save listing", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"listing": saved,
	})
}

// List returns stored listings, newest first
// @Summary List saved listings
// @Tags listings
// @Produce json
// @Param make query string false "Only listings of this make (aliases accepted)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid make filter"
// @Router /api/listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	mk := c.Query("make")
	if mk != "" {
		if err := validation.ValidateMakeFilter(mk); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		mk, _ = vehicle.ResolveMake(mk)
	}

	stored, err := h.svc.Store().ListListings(mk)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to load listings", err)
		return
	}
	if stored == nil {
		stored = []*models.Listing{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"listings": stored,
		"count":    len(stored),
	})
}

// Count returns the number of stored listings
// @Summary Count saved listings
// @Tags listings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/listings/count [get]
func (h *ListingHandler) Count(c *gin.Context) {
	count, err := h.svc.Store().CountListings()
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to count listings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Get returns one listing
// @Summary Get a saved listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Listing not found"
// @Router /api/listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateListingID(id); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	listing, err := h.svc.Store().GetListing(id)
	if err != nil {
		if errors.Is(err, database.ErrListingNotFound) {
			util.SafeErrorResponse(c, http.StatusNotFound, "Listing not found", nil)
			return
		}
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to load listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "listing": listing})
}

// Delete removes one listing
// @Summary Delete a saved listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Listing not found"
// @Router /api/listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateListingID(id); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.svc.Store().DeleteListing(id); err != nil {
		if errors.Is(err, database.ErrListingNotFound) {
			util.SafeErrorResponse(c, http.StatusNotFound, "Listing not found", nil)
			return
		}
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to delete listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Listing deleted"})
}

// Clear removes every listing
// @Summary Delete all saved listings
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Admin access required"
// @Router /api/listings [delete]
func (h *ListingHandler) Clear(c *gin.Context) {
	deleted, err := h.svc.Store().ClearListings()
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to clear listings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// Reparse runs every stored listing through the parser again
// @Summary Re-parse all saved listings
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} listings.ReparseSummary
// @Failure 401 {object} map[string]interface{} "Admin access required"
// @Router /api/listings/reparse [post]
func (h *ListingHandler) Reparse(c *gin.Context) {
	summary, err := h.svc.Reparse()
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to reparse listings", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Fetch loads a listing page, parses its title and stores it
// @Summary Fetch and save a listing page
// @Description Loads the page in a headless browser, reads the listing title and stores the parsed listing. Throttled per client.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param request body FetchRequest true "Listing URL"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid URL"
// @Failure 401 {object} map[string]interface{} "Admin access required"
// @Failure 422 {object} map[string]interface{} "No title on page"
// @Failure 429 {object} map[string]interface{} "Fetching too often"
// @Failure 502 {object} map[string]interface{} "Page could not be loaded"
// @Router /api/listings/fetch [post]
func (h *ListingHandler) Fetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}
	if err := validation.ValidateListingURL(req.URL); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	saved, err := h.svc.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrNoTitleSource):
			util.SafeErrorResponse(c, http.StatusServiceUnavailable, "Page fetching is not enabled", err)
		case errors.Is(err, scraper.ErrNoTitle):
			util.SafeErrorResponse(c, http.StatusUnprocessableEntity, "No listing title found on page", err)
		default:
			util.SafeErrorResponse(c, http.StatusBadGateway, "Failed to load listing page", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "listing": saved})
}
