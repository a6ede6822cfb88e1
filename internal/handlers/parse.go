package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listingparser/internal/models"
	"listingparser/internal/util"
	"listingparser/internal/validation"
	"listingparser/internal/vehicle"
)

// ParseHandler serves the stateless parser endpoints and reference data.
type ParseHandler struct{}

func NewParseHandler() *ParseHandler {
	return &ParseHandler{}
}

type ParseRequest struct {
	Title string `json:"title" binding:"required"`
}

// Parse parses a single listing title
// @Summary Parse a vehicle listing title
// @Description Extracts year, make and model from a free-text title. Fields that cannot be determined are returned as "N/A" with confidence 0.
// @Tags parser
// @Accept json
// @Produce json
// @Param request body ParseRequest true "Title to parse"
// @Success 200 {object} vehicle.Result
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/parse [post]
func (h *ParseHandler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	title, err := validation.NormalizeTitle(req.Title)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, vehicle.ParseTitle(title))
}

// Enhance merges parsed vehicle fields into a listing without storing it
// @Summary Enhance a listing from its title
// @Description Parses the listing title and overwrites year, make and model only where the parser is confident. The listing is not stored.
// @Tags parser
// @Accept json
// @Produce json
// @Param listing body models.Listing true "Listing to enhance"
// @Success 200 {object} models.Listing
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/enhance [post]
func (h *ParseHandler) Enhance(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	c.JSON(http.StatusOK, vehicle.Enhance(listing))
}

// ListMakes returns the canonical makes
// @Summary List known makes
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/makes [get]
func (h *ParseHandler) ListMakes(c *gin.Context) {
	makes := vehicle.Makes()
	c.JSON(http.StatusOK, gin.H{
		"makes": makes,
		"count": len(makes),
	})
}

// ListModels returns the canonical models of a make. Aliases such as "chevy" resolve.
// @Summary List models for a make
// @Tags reference
// @Produce json
// @Param make path string true "Make name or alias"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Unknown make"
// @Router /api/makes/{make}/models [get]
func (h *ParseHandler) ListModels(c *gin.Context) {
	mk, ok := vehicle.ResolveMake(c.Param("make"))
	if !ok {
		util.SafeErrorResponse(c, http.StatusNotFound, "Unknown make", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"make":   mk,
		"models": vehicle.Models(mk),
	})
}
