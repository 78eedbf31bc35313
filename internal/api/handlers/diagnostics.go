package handlers

import (
	"net/http"

	"stone-ledger-backend/internal/diagnostics"

	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler exposes read-only bridge diagnostics
type DiagnosticsHandler struct {
	reporter *diagnostics.Reporter
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(reporter *diagnostics.Reporter) *DiagnosticsHandler {
	return &DiagnosticsHandler{reporter: reporter}
}

// BridgeReport handles GET /api/v1/diagnostics/bridge
// @Summary Bridge table report
// @Description Get a read-only snapshot of the entry-type/material bridge: totals, counts by entry type, all mappings and the rate catalog
// @Tags diagnostics
// @Accept json
// @Produce json
// @Success 200 {object} diagnostics.BridgeReport "Bridge snapshot"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /diagnostics/bridge [get]
func (h *DiagnosticsHandler) BridgeReport(c *gin.Context) {
	report, err := h.reporter.Report()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build bridge report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
