package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// EventsHandler serves the recent command log
type EventsHandler struct {
	events *singular.EventLog
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(events *singular.EventLog) *EventsHandler {
	return &EventsHandler{events: events}
}

// Recent handles GET /events
// @Summary      Recent command events
// @Description  Returns the most recent successfully dispatched commands, oldest first
// @Tags         events
// @Produce      json
// @Success      200  {object}  types.EventsResponse
// @Router       /events [get]
func (h *EventsHandler) Recent(c *gin.Context) {
	entries := h.events.Recent(100)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	c.JSON(http.StatusOK, types.EventsResponse{Events: out})
}
