package handler

import (
	"net/http"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/labstack/echo/v4"
)

// Version is set at build time with -ldflags "-X ...handler.Version=...".
var Version = "dev"

type serviceInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Endpoints   []string `json:"endpoints"`
}

// InfoHandler answers the root path with a short service description.
type InfoHandler struct {
	Handler
}

func NewInfoHandler(s *server.Server) *InfoHandler {
	return &InfoHandler{Handler: NewHandler(s)}
}

func (h *InfoHandler) ServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Grampanchayat API is running",
		Data: serviceInfo{
			Name:        config.ServiceName,
			Version:     Version,
			Environment: h.server.Config.Primary.Env,
			Endpoints: []string{
				"/api/auth", "/api/users", "/api/representatives", "/api/documents",
				"/api/certificates", "/api/images", "/api/hero-images", "/api/infrastructure",
				"/api/historical", "/api/grampanchayat", "/api/announcements", "/api/website",
				"/api/health", "/docs",
			},
		},
	})
}
