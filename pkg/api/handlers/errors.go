package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/types"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// writeDispatchError maps dispatch and rebuild failures onto HTTP
// statuses: caller input errors are 4xx, remote trouble is 5xx, and a
// remote rejection passes the remote status and body through so
// automation can tell the two apart.
func writeDispatchError(c *gin.Context, err error) {
	var remoteErr *singular.RemoteError
	switch {
	case errors.Is(err, singular.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, singular.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "field_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, singular.ErrNotTimeControl):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "not_timecontrol",
			Message: err.Error(),
		})
	case errors.Is(err, singular.ErrNoToken):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "no_token",
			Message: err.Error(),
		})
	case errors.As(err, &remoteErr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:        "remote_rejected",
			Message:      "singular rejected the control call",
			RemoteStatus: remoteErr.Status,
			RemoteBody:   remoteErr.Body,
		})
	case errors.Is(err, singular.ErrRemoteUnavailable):
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "remote_unavailable",
			Message: err.Error(),
		})
	case errors.Is(err, singular.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "malformed_response",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
