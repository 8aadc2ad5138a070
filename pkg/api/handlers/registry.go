package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// RegistryHandler handles registry discovery and maintenance endpoints
type RegistryHandler struct {
	registry *singular.Registry
	fetcher  singular.ModelFetcher
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registry *singular.Registry, fetcher singular.ModelFetcher) *RegistryHandler {
	return &RegistryHandler{registry: registry, fetcher: fetcher}
}

// Refresh handles POST /registry/refresh
// @Summary      Rebuild the registry
// @Description  Fetches the control app model and rebuilds the key registry from scratch
// @Tags         registry
// @Produce      json
// @Success      200  {object}  types.RefreshResponse
// @Failure      400  {object}  types.ErrorResponse  "No token configured"
// @Failure      502  {object}  types.ErrorResponse  "Malformed model response"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /registry/refresh [post]
func (h *RegistryHandler) Refresh(c *gin.Context) {
	count, err := h.registry.Rebuild(c.Request.Context())
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RefreshResponse{OK: true, Count: count})
}

// List handles GET /registry/list
// @Summary      List registry entries
// @Description  Returns every registry key with its id, name and field ids
// @Tags         registry
// @Produce      json
// @Success      200  {object}  map[string]types.ListEntry
// @Router       /registry/list [get]
func (h *RegistryHandler) List(c *gin.Context) {
	out := make(map[string]types.ListEntry)
	h.registry.Each(func(key string, asset *singular.Asset) {
		fields := make([]string, 0, len(asset.Fields))
		for fid := range asset.Fields {
			if fid == "" {
				continue
			}
			fields = append(fields, fid)
		}
		sort.Strings(fields)
		out[key] = types.ListEntry{ID: asset.ID, Name: asset.Name, Fields: fields}
	})
	c.JSON(http.StatusOK, out)
}

// Commands handles GET /registry/commands
// @Summary      Full command catalog
// @Description  Ready-to-call command URLs for every registry entry and field
// @Tags         registry
// @Produce      json
// @Success      200  {object}  types.CommandsResponse
// @Router       /registry/commands [get]
func (h *RegistryHandler) Commands(c *gin.Context) {
	c.JSON(http.StatusOK, types.CommandsResponse{
		Note:    "Most control endpoints support GET for testing, but POST is recommended in automation.",
		Catalog: singular.BuildCatalog(h.registry, baseURL(c)),
	})
}

// Help handles GET /:key/help
// @Summary      Command catalog for one asset
// @Description  Ready-to-call command URLs for a single registry entry
// @Tags         registry
// @Produce      json
// @Param        key  path      string  true  "Registry key or subcomposition id"
// @Success      200  {object}  types.HelpResponse
// @Failure      404  {object}  types.ErrorResponse  "Subcomposition not found"
// @Router       /{key}/help [get]
func (h *RegistryHandler) Help(c *gin.Context) {
	key, asset, err := h.registry.Resolve(c.Param("key"))
	if err != nil {
		writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.HelpResponse{
		Commands: singular.BuildCatalogEntry(key, asset, baseURL(c)),
	})
}

// Ping handles GET /singular/ping
// @Summary      Check Singular connectivity
// @Description  Fetches the model and reports its top-level shape
// @Tags         registry
// @Produce      json
// @Success      200  {object}  types.PingResponse
// @Failure      400  {object}  types.ErrorResponse  "No token configured"
// @Failure      503  {object}  types.ErrorResponse  "Singular unavailable"
// @Router       /singular/ping [get]
func (h *RegistryHandler) Ping(c *gin.Context) {
	model, err := h.fetcher.FetchModel(c.Request.Context())
	if err != nil {
		writeDispatchError(c, err)
		return
	}

	resp := types.PingResponse{
		OK:      true,
		Message: "Connected to Singular",
		Subs:    h.registry.Len(),
	}
	switch m := model.(type) {
	case map[string]any:
		resp.ModelType = "object"
		for k := range m {
			resp.TopLevelKeys = append(resp.TopLevelKeys, k)
		}
		sort.Strings(resp.TopLevelKeys)
		if len(resp.TopLevelKeys) > 5 {
			resp.TopLevelKeys = resp.TopLevelKeys[:5]
		}
	case []any:
		resp.ModelType = "list"
		resp.TopLevelKeys = []string{fmt.Sprintf("list(len=%d)", len(m))}
	default:
		resp.ModelType = fmt.Sprintf("%T", model)
	}
	c.JSON(http.StatusOK, resp)
}
