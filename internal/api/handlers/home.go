package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SheetHealth godoc
// @Summary Spreadsheet connectivity probe
// @Description Fetch the spreadsheet title and sheet names
// @Tags health
// @Produce json
// @Success 200 {object} object{success=boolean,title=string,sheets=[]string}
// @Router /api/sheet/health [get]
func (h *Handler) SheetHealth(c *gin.Context) {
	info, err := h.sheets.Health(c.Request.Context())
	if err != nil {
		h.sheetError(c, "Sheet health check failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   info.Title,
		"sheets":  info.Sheets,
	})
}
