package pricing

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	rates *RateCard
}

func NewHandler(rates *RateCard) *Handler {
	return &Handler{rates: rates}
}

// --------------------------------------------------
// GET /pricing/regions
// --------------------------------------------------
func (h *Handler) ListRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": h.rates.Regions()})
}

// --------------------------------------------------
// GET /pricing/quote
// Server-side preview of the registration bill.
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing region parameter"})
		return
	}

	fromDate, err := time.ParseInLocation("2006-01-02", c.Query("from_date"), IST)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from_date, expected YYYY-MM-DD"})
		return
	}
	tillDate, err := time.ParseInLocation("2006-01-02", c.Query("till_date"), IST)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid till_date, expected YYYY-MM-DD"})
		return
	}

	lunchCount, err := strconv.Atoi(c.DefaultQuery("lunch_count", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lunch_count"})
		return
	}
	dinnerCount, err := strconv.Atoi(c.DefaultQuery("dinner_count", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dinner_count"})
		return
	}

	if tillDate.Before(fromDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidWindow.Error()})
		return
	}

	total, err := h.rates.ComputeTotal(region, fromDate, tillDate, lunchCount, dinnerCount)
	if err != nil {
		if errors.Is(err, ErrUnknownRegion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region: " + region})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"region":     region,
		"total_bill": total,
	})
}
