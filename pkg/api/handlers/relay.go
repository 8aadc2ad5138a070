package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/datastream"
	"github.com/blueelliott/singular-controls/pkg/relay"
	"github.com/blueelliott/singular-controls/pkg/tfl"
)

// RelayHandler handles the TfL status relay endpoints
type RelayHandler struct {
	relay *relay.Service
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(svc *relay.Service) *RelayHandler {
	return &RelayHandler{relay: svc}
}

// Status handles GET /status
// @Summary      Current line statuses
// @Description  Fetches the current TfL line statuses without forwarding them
// @Tags         relay
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  types.ErrorResponse  "TfL module disabled"
// @Failure      502  {object}  types.ErrorResponse  "TfL API failure"
// @Router       /status [get]
func (h *RelayHandler) Status(c *gin.Context) {
	statuses, err := h.relay.Statuses(c.Request.Context())
	if err != nil {
		writeRelayError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// Update handles POST /update
// @Summary      Push current statuses to the datastream
// @Tags         relay
// @Produce      json
// @Success      200  {object}  types.RelayResponse
// @Failure      400  {object}  types.ErrorResponse  "No stream URL configured"
// @Failure      403  {object}  types.ErrorResponse  "TfL module disabled"
// @Failure      502  {object}  types.ErrorResponse  "TfL API failure"
// @Router       /update [post]
func (h *RelayHandler) Update(c *gin.Context) {
	payload, result, err := h.relay.Update(c.Request.Context())
	writeRelayResult(c, "live", payload, result, err)
}

// Test handles POST /test
// @Summary      Push a TEST payload to the datastream
// @Description  Sends every line set to TEST so graphics can be checked on air
// @Tags         relay
// @Produce      json
// @Success      200  {object}  types.RelayResponse
// @Failure      400  {object}  types.ErrorResponse  "No stream URL configured"
// @Failure      403  {object}  types.ErrorResponse  "TfL module disabled"
// @Router       /test [post]
func (h *RelayHandler) Test(c *gin.Context) {
	payload, result, err := h.relay.Test(c.Request.Context())
	writeRelayResult(c, "test", payload, result, err)
}

// Blank handles POST /blank
// @Summary      Push an empty payload to the datastream
// @Description  Clears every line so graphics fall back to their idle state
// @Tags         relay
// @Produce      json
// @Success      200  {object}  types.RelayResponse
// @Failure      400  {object}  types.ErrorResponse  "No stream URL configured"
// @Failure      403  {object}  types.ErrorResponse  "TfL module disabled"
// @Router       /blank [post]
func (h *RelayHandler) Blank(c *gin.Context) {
	payload, result, err := h.relay.Blank(c.Request.Context())
	writeRelayResult(c, "blank", payload, result, err)
}

// Manual handles POST /manual
// @Summary      Push a caller-supplied payload to the datastream
// @Description  Validates and forwards an arbitrary line-to-status map; works even while the TfL module is disabled
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Line statuses"
// @Success      200      {object}  types.RelayResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid payload or no stream URL"
// @Router       /manual [post]
func (h *RelayHandler) Manual(c *gin.Context) {
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	result, err := h.relay.Manual(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_payload", Message: err.Error()})
		return
	}
	writeRelayResult(c, "manual", payload, result, nil)
}

// Lines handles GET /tfl/lines
// @Summary      Known TfL lines
// @Tags         relay
// @Produce      json
// @Success      200  {object}  types.LinesResponse
// @Router       /tfl/lines [get]
func (h *RelayHandler) Lines(c *gin.Context) {
	lines := append([]string{}, tfl.Lines...)
	sort.Strings(lines)
	c.JSON(http.StatusOK, types.LinesResponse{Lines: lines})
}

func writeRelayResult(c *gin.Context, mode string, payload map[string]string, result *datastream.Result, err error) {
	if err != nil {
		writeRelayError(c, err)
		return
	}
	resp := types.RelayResponse{
		SentTo:    mode,
		Payload:   payload,
		StreamURL: result.StreamURL,
		Status:    result.Status,
		Response:  result.Response,
		Error:     result.Error,
	}
	c.JSON(http.StatusOK, resp)
}

func writeRelayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, relay.ErrDisabled):
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "module_disabled", Message: err.Error()})
	case errors.Is(err, datastream.ErrNoStreamURL):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "no_stream_url", Message: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, types.ErrorResponse{Error: "upstream_error", Message: err.Error()})
	}
}
