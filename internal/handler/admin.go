package handler

import (
	"log/slog"
	"net"

	"github.com/gin-gonic/gin"
)

const sharedSecretHeader = "X-Shared-Secret"

// isAdminRequest reports whether the request carries the shared secret
// or originates from the loopback interface. Admin requests may force
// regeneration, address arbitrary cache keys and supply explicit
// article URLs.
func isAdminRequest(c *gin.Context, sharedSecret string) bool {
	validSecret := sharedSecret != "" && c.GetHeader(sharedSecretHeader) == sharedSecret

	isLoopback := false
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		if ip := net.ParseIP(host); ip != nil {
			isLoopback = ip.IsLoopback()
		}
	}

	if validSecret || isLoopback {
		slog.Info("admin request detected", "remote", c.Request.RemoteAddr, "valid_secret", validSecret)
		return true
	}
	return false
}
