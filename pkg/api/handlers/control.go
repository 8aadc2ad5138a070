package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// ControlHandler handles the per-asset dispatch endpoints
type ControlHandler struct {
	dispatcher *singular.Dispatcher
}

// NewControlHandler creates a new control handler
func NewControlHandler(dispatcher *singular.Dispatcher) *ControlHandler {
	return &ControlHandler{dispatcher: dispatcher}
}

// In handles GET/POST /:key/in
// @Summary      Bring a subcomposition in
// @Description  Transitions the subcomposition to the In state
// @Tags         control
// @Produce      json
// @Param        key  path      string  true  "Registry key or subcomposition id"
// @Success      200  {object}  singular.CommandResult
// @Failure      404  {object}  types.ErrorResponse  "Subcomposition not found"
// @Failure      502  {object}  types.ErrorResponse  "Singular rejected the call"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /{key}/in [get]
func (h *ControlHandler) In(c *gin.Context) {
	res, err := h.dispatcher.In(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Out handles GET/POST /:key/out
// @Summary      Take a subcomposition out
// @Description  Transitions the subcomposition to the Out state
// @Tags         control
// @Produce      json
// @Param        key  path      string  true  "Registry key or subcomposition id"
// @Success      200  {object}  singular.CommandResult
// @Failure      404  {object}  types.ErrorResponse  "Subcomposition not found"
// @Failure      502  {object}  types.ErrorResponse  "Singular rejected the call"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /{key}/out [get]
func (h *ControlHandler) Out(c *gin.Context) {
	res, err := h.dispatcher.Out(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Set handles GET/POST /:key/set
// @Summary      Set a field value
// @Description  Coerces the value per the field's declared type and forwards it as a payload mutation
// @Tags         control
// @Produce      json
// @Param        key       path   string  true   "Registry key or subcomposition id"
// @Param        field     query  string  true   "Field id as shown in /registry/list"
// @Param        value     query  string  true   "Value to set"
// @Param        asString  query  int     false  "Send value strictly as string if 1"
// @Success      200  {object}  singular.CommandResult
// @Failure      400  {object}  types.ErrorResponse  "Missing parameters"
// @Failure      404  {object}  types.ErrorResponse  "Subcomposition or field not found"
// @Failure      502  {object}  types.ErrorResponse  "Singular rejected the call"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /{key}/set [get]
func (h *ControlHandler) Set(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "missing_parameter",
			Message: "field query parameter is required",
		})
		return
	}
	value, present := c.GetQuery("value")
	if !present {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "missing_parameter",
			Message: "value query parameter is required",
		})
		return
	}
	asString := c.Query("asString") == "1"

	res, err := h.dispatcher.SetField(c.Request.Context(), c.Param("key"), field, value, asString)
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// TimeControl handles GET/POST /:key/timecontrol
// @Summary      Start or stop a timecontrol field
// @Description  Builds a timecontrol payload with a UTC timestamp and optional countdown duration
// @Tags         control
// @Produce      json
// @Param        key      path   string   true   "Registry key or subcomposition id"
// @Param        field    query  string   true   "Timecontrol field id"
// @Param        run      query  bool     false  "true=start, false=stop (default true)"
// @Param        value    query  int      false  "Usually 0"
// @Param        utc      query  number   false  "Override UTC milliseconds; default now"
// @Param        seconds  query  int      false  "Optional duration for countdowns"
// @Success      200  {object}  singular.CommandResult
// @Failure      400  {object}  types.ErrorResponse  "Field is not a timecontrol"
// @Failure      404  {object}  types.ErrorResponse  "Subcomposition or field not found"
// @Failure      502  {object}  types.ErrorResponse  "Singular rejected the call"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /{key}/timecontrol [get]
func (h *ControlHandler) TimeControl(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "missing_parameter",
			Message: "field query parameter is required",
		})
		return
	}

	req := singular.TimeControlRequest{FieldID: field, Run: true}
	if raw, present := c.GetQuery("run"); present {
		run, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_parameter",
				Message: "run must be a boolean",
			})
			return
		}
		req.Run = run
	}
	if raw, present := c.GetQuery("value"); present {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_parameter",
				Message: "value must be an integer",
			})
			return
		}
		req.Value = v
	}
	if raw, present := c.GetQuery("utc"); present {
		utc, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_parameter",
				Message: "utc must be a number of milliseconds",
			})
			return
		}
		req.UTCMillis = &utc
	}
	if raw, present := c.GetQuery("seconds"); present {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_parameter",
				Message: "seconds must be an integer",
			})
			return
		}
		req.Seconds = &secs
	}

	res, err := h.dispatcher.TimeControl(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
