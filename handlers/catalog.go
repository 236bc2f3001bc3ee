package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carlos-tribe/holly-assistant-hicv/services/catalog"
)

// ListDestinations returns the full destination table.
func ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Destinations)
}

// GetDestination returns one destination by id.
func GetDestination(c *gin.Context) {
	dest := catalog.GetDestinationByID(c.Param("id"))
	if dest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, dest)
}

// SearchDestinations does free-text search over the destination table.
func SearchDestinations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}
	c.JSON(http.StatusOK, catalog.SearchDestinations(query))
}

// GetAvailability returns the monthly availability snapshot for a
// destination.
func GetAvailability(c *gin.Context) {
	avail, ok := catalog.GetDestinationAvailability(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, avail)
}

// GetFlexibleDates returns the curated flexible options for a destination,
// possibly empty.
func GetFlexibleDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"destinationId": c.Param("id"),
		"options":       catalog.GetFlexibleDatesForDestination(c.Param("id")),
	})
}

// GetAvailableMonths lists the next six months for the narrowing picker.
func GetAvailableMonths(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.AvailableMonths(time.Now()))
}
