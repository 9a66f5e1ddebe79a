package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/models"
	"github.com/hades874/10MS-Req-Dash/internal/sheets"
)

// ListRequisitions godoc
// @Summary List all requisitions
// @Description Fetch every requisition row from the sheet, newest first
// @Tags requisitions
// @Produce json
// @Success 200 {array} models.Requisition
// @Failure 500 {object} object{error=string,details=string,suggestion=string}
// @Router /api/requisitions [get]
func (h *Handler) ListRequisitions(c *gin.Context) {
	requisitions, err := h.sheets.GetRequisitions(c.Request.Context())
	if err != nil {
		h.sheetError(c, "Failed to fetch requisitions", err)
		return
	}

	c.JSON(http.StatusOK, requisitions)
}

// UpdateStatus godoc
// @Summary Update a requisition's status
// @Description Overwrite the status cell for one requisition row
// @Tags requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param update body object{id=string,status=string,expected_status=string} true "Row id and new status"
// @Success 200 {object} object{message=string,updated=boolean,id=string,status=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string,updated=boolean}
// @Router /api/requisitions [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	identity := c.MustGet("identity").(*auth.Identity)

	var request struct {
		ID             string `json:"id" binding:"required"`
		Status         string `json:"status" binding:"required"`
		ExpectedStatus string `json:"expected_status"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and status are required"})
		return
	}

	rowID, err := strconv.Atoi(request.ID)
	if err != nil || rowID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive row number"})
		return
	}

	log.Printf("Status update: row %d -> %q by %s (%s)",
		rowID, request.Status, identity.User.Email, identity.User.Role)

	// Row ids are 1-based at fetch time; the sheet write path wants the
	// zero-based data row index.
	err = h.sheets.UpdateStatus(c.Request.Context(), rowID-1, request.Status, request.ExpectedStatus)
	if err != nil {
		if errors.Is(err, sheets.ErrStatusConflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Status changed since last read",
				"updated": false,
			})
			return
		}
		h.sheetError(c, "Failed to update status in sheet", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"updated": true,
		"id":      request.ID,
		"status":  request.Status,
	})
}

// Stats godoc
// @Summary Requisition statistics
// @Description Counts by status and assigned team over the current sheet
// @Tags requisitions
// @Produce json
// @Success 200 {object} models.RequisitionStats
// @Router /api/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	requisitions, err := h.sheets.GetRequisitions(c.Request.Context())
	if err != nil {
		h.sheetError(c, "Failed to fetch requisitions", err)
		return
	}

	stats := models.RequisitionStats{
		Total:    len(requisitions),
		ByStatus: make(map[string]int),
		ByTeam:   make(map[string]int),
	}
	for _, r := range requisitions {
		stats.ByStatus[r.Status]++
		if r.AssignedTeam != "" {
			stats.ByTeam[r.AssignedTeam]++
		}
	}

	c.JSON(http.StatusOK, stats)
}

// sheetError maps sheet client failures onto HTTP responses: configuration
// errors carry a remediation hint, upstream errors forward the Google status
// and body, anything else is a 500.
func (h *Handler) sheetError(c *gin.Context, message string, err error) {
	var cfgErr *sheets.ConfigError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      message,
			"details":    cfgErr.Error(),
			"suggestion": cfgErr.Suggestion,
		})
		return
	}

	var fetchErr *sheets.FetchError
	if errors.As(err, &fetchErr) {
		c.JSON(fetchErr.StatusCode, gin.H{
			"error":   message,
			"details": fetchErr.Body,
		})
		return
	}

	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
