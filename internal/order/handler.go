package order

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shadow2411/psfoundation/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /tiffins
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		MobileNumber string `json:"mobile_number"`
		Region       string `json:"region"`
		Village      string `json:"village"`
		FromDate     string `json:"from_date"`
		TillDate     string `json:"till_date"`
		LunchCount   int    `json:"lunch_count"`
		DinnerCount  int    `json:"dinner_count"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Only calendar dates are accepted; day boundaries are applied
	// server-side in IST.
	fromDate, err := time.ParseInLocation("2006-01-02", req.FromDate, pricing.IST)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from_date, expected YYYY-MM-DD"})
		return
	}
	tillDate, err := time.ParseInLocation("2006-01-02", req.TillDate, pricing.IST)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid till_date, expected YYYY-MM-DD"})
		return
	}

	order, err := h.service.Register(
		c.Request.Context(),
		req.Name,
		req.MobileNumber,
		req.Region,
		req.Village,
		fromDate,
		tillDate,
		req.LunchCount,
		req.DinnerCount,
	)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register tiffin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "tiffin registered successfully",
		"tiffin":  order,
	})
}

// --------------------------------------------------
// GET /tiffins/active?meal=lunch|dinner
// --------------------------------------------------
func (h *Handler) ListActive(c *gin.Context) {
	mealParam := c.Query("meal")
	if mealParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing meal parameter"})
		return
	}

	meal, err := ParseMeal(mealParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tiffins, err := h.service.ListActive(c.Request.Context(), meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tiffins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiffins": tiffins})
}

// --------------------------------------------------
// GET /tiffins
// --------------------------------------------------
func (h *Handler) ListAll(c *gin.Context) {
	tiffins, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tiffins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiffins": tiffins})
}

// --------------------------------------------------
// POST /tiffins/:id/payment
// --------------------------------------------------
func (h *Handler) MarkPaid(c *gin.Context) {
	order, err := h.service.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tiffin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tiffin":  order,
	})
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, pricing.ErrUnknownRegion),
		errors.Is(err, pricing.ErrInvalidWindow),
		errors.Is(err, pricing.ErrNegativeCount),
		errors.Is(err, ErrInvalidMeal),
		errors.Is(err, ErrNameTooShort),
		errors.Is(err, ErrInvalidMobile),
		errors.Is(err, ErrVillageRequired):
		return true
	}
	return false
}
