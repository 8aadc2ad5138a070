package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/datastream"
	"github.com/blueelliott/singular-controls/pkg/db"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// ConfigHandler handles runtime configuration endpoints
type ConfigHandler struct {
	cfg      *config.Manager
	registry *singular.Registry
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Manager, registry *singular.Registry) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, registry: registry}
}

// Get handles GET /config
// @Summary      Current configuration
// @Description  Returns the live configuration, with secrets reported as set/unset
// @Tags         config
// @Produce      json
// @Success      200  {object}  types.ConfigResponse
// @Router       /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	s := h.cfg.Get()
	c.JSON(http.StatusOK, types.ConfigResponse{
		Singular: types.SingularConfig{
			TokenSet:  s.SingularToken != "",
			Token:     s.SingularToken,
			StreamURL: s.StreamURL,
		},
		TfL: types.TfLConfig{
			AppIDSet:  s.TfLAppID != "",
			AppKeySet: s.TfLAppKey != "",
		},
		Settings: types.SettingsInfo{
			Port:           s.Port,
			EnableTfL:      s.EnableTfL,
			TfLAutoRefresh: s.TfLAutoRefresh,
			Theme:          s.Theme,
		},
	})
}

// SetToken handles POST /config/singular
// @Summary      Set the Singular control app token
// @Description  Persists the token and rebuilds the registry against the new control app
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.TokenRequest  true  "Control app token"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /config/singular [post]
func (h *ConfigHandler) SetToken(c *gin.Context) {
	var req types.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if _, err := h.cfg.Update(c.Request.Context(), func(s *db.Settings) {
		s.SingularToken = req.Token
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal_error", Message: err.Error()})
		return
	}

	resp := types.ConfigUpdateResponse{OK: true, Message: "Token saved"}
	count, err := h.registry.Rebuild(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("registry rebuild after token change failed")
		resp.Message = "Token saved, but registry rebuild failed: " + err.Error()
	} else {
		resp.Subs = &count
	}
	c.JSON(http.StatusOK, resp)
}

// SetStream handles POST /config/stream
// @Summary      Set the datastream URL
// @Description  Persists the datastream URL; a bare stream id is expanded to a full URL
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.StreamRequest  true  "Datastream URL or id"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /config/stream [post]
func (h *ConfigHandler) SetStream(c *gin.Context) {
	var req types.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	full := datastream.NormalizeURL(req.StreamURL)
	if _, err := h.cfg.Update(c.Request.Context(), func(s *db.Settings) {
		s.StreamURL = full
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.ConfigUpdateResponse{OK: true, Message: "Stream URL saved", URL: full})
}

// SetTfL handles POST /config/tfl
// @Summary      Set the TfL API credentials
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.TfLConfigRequest  true  "TfL app id and key"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /config/tfl [post]
func (h *ConfigHandler) SetTfL(c *gin.Context) {
	var req types.TfLConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if _, err := h.cfg.Update(c.Request.Context(), func(s *db.Settings) {
		s.TfLAppID = req.AppID
		s.TfLAppKey = req.AppKey
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.ConfigUpdateResponse{OK: true, Message: "TfL credentials saved"})
}

// ToggleTfL handles POST /config/modules/tfl
// @Summary      Enable or disable the TfL module
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.ModuleToggleRequest  true  "Desired state"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /config/modules/tfl [post]
func (h *ConfigHandler) ToggleTfL(c *gin.Context) {
	h.toggle(c, func(s *db.Settings, enabled bool) { s.EnableTfL = enabled })
}

// ToggleTfLAutoRefresh handles POST /config/modules/tfl/auto-refresh
// @Summary      Enable or disable TfL auto-refresh
// @Description  When enabled, the background loop pushes line statuses to the datastream every minute
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.ModuleToggleRequest  true  "Desired state"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /config/modules/tfl/auto-refresh [post]
func (h *ConfigHandler) ToggleTfLAutoRefresh(c *gin.Context) {
	h.toggle(c, func(s *db.Settings, enabled bool) { s.TfLAutoRefresh = enabled })
}

func (h *ConfigHandler) toggle(c *gin.Context, apply func(*db.Settings, bool)) {
	var req types.ModuleToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if _, err := h.cfg.Update(c.Request.Context(), func(s *db.Settings) {
		apply(s, req.Enabled)
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal_error", Message: err.Error()})
		return
	}
	enabled := req.Enabled
	c.JSON(http.StatusOK, types.ConfigUpdateResponse{OK: true, Enabled: &enabled})
}

// SaveSettings handles POST /settings
// @Summary      Save general settings
// @Description  Updates port, theme and module toggles; a port change applies on restart
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body      types.SettingsRequest  true  "Settings"
// @Success      200      {object}  types.ConfigUpdateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  types.ErrorResponse  "Persistence failure"
// @Router       /settings [post]
func (h *ConfigHandler) SaveSettings(c *gin.Context) {
	var req types.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if req.Port != nil && (*req.Port < 1 || *req.Port > 65535) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid_request", Message: "port must be between 1 and 65535"})
		return
	}

	if _, err := h.cfg.Update(c.Request.Context(), func(s *db.Settings) {
		if req.Port != nil {
			s.Port = *req.Port
		}
		if req.Theme != nil {
			s.Theme = *req.Theme
		}
		s.EnableTfL = req.EnableTfL
	}); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal_error", Message: err.Error()})
		return
	}

	msg := "Settings saved"
	if req.Port != nil {
		msg = "Settings saved; port changes apply after restart"
	}
	c.JSON(http.StatusOK, types.ConfigUpdateResponse{OK: true, Message: msg})
}
