package handlers

import "github.com/gin-gonic/gin"

// baseURL reconstructs the externally visible base URL for catalog links,
// honoring reverse-proxy forwarding headers.
func baseURL(c *gin.Context) string {
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if c.Request.TLS != nil {
			proto = "https"
		}
	}
	return proto + "://" + host
}
