package router

import (
	"net/http"

	"github.com/deppfellow/grampanchayat/internal/handler"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/labstack/echo/v4"
)

// registerContentRoutes registers the website content areas. Reads are public;
// writes need a token whose user may write the area's task.
func registerContentRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	writer := func(task model.Task) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{m.Auth.RequireAuth, m.Auth.RequireWrite(task)}
	}

	// representatives
	rh := h.Representatives
	reps := api.Group("/representatives")
	canWrite := writer(model.TaskRepresentatives)
	reps.GET("", handler.Handle(rh.Handler, rh.ListRepresentatives, http.StatusOK))
	reps.POST("", handler.HandleWithMessage(rh.Handler, rh.SaveRepresentatives, http.StatusOK,
		"Representatives saved successfully"), canWrite...)
	reps.POST("/upload", handler.HandleWithMessage(rh.Handler, rh.UploadImage, http.StatusOK,
		"Image uploaded successfully"), canWrite...)
	reps.DELETE("/:id", handler.HandleNoContent(rh.Handler, rh.DeleteRepresentative, http.StatusOK,
		"Representative deleted successfully"), canWrite...)

	// documents
	dh := h.Documents
	docs := api.Group("/documents")
	canWrite = writer(model.TaskDocuments)
	docs.GET("", handler.Handle(dh.Handler, dh.ListDocuments, http.StatusOK))
	docs.GET("/:id", handler.Handle(dh.Handler, dh.GetDocument, http.StatusOK))
	docs.POST("", handler.HandleWithMessage(dh.Handler, dh.CreateDocuments, http.StatusCreated,
		"Documents created successfully"), canWrite...)
	docs.PUT("/:id", handler.HandleWithMessage(dh.Handler, dh.UpdateDocument, http.StatusOK,
		"Document updated successfully"), canWrite...)
	docs.DELETE("/:id", handler.HandleNoContent(dh.Handler, dh.DeleteDocument, http.StatusOK,
		"Document deleted successfully"), canWrite...)
	docs.DELETE("", handler.HandleWithMessage(dh.Handler, dh.DeleteDocuments, http.StatusOK,
		"Documents deleted successfully"), canWrite...)

	// certificates
	ch := h.Certificates
	certs := api.Group("/certificates")
	canWrite = writer(model.TaskCertificates)
	certs.GET("", handler.Handle(ch.Handler, ch.ListCertificates, http.StatusOK))
	certs.POST("", handler.HandleWithMessage(ch.Handler, ch.SaveCertificates, http.StatusOK,
		"Certificates saved successfully"), canWrite...)
	certs.DELETE("/:id", handler.HandleNoContent(ch.Handler, ch.DeleteCertificate, http.StatusOK,
		"Certificate deleted successfully"), canWrite...)

	// images
	ih := h.Images
	images := api.Group("/images")
	canWrite = writer(model.TaskImages)
	images.GET("", handler.Handle(ih.Handler, ih.ListImages, http.StatusOK))
	images.POST("/upload", handler.HandleWithMessage(ih.Handler, ih.UploadImage, http.StatusCreated,
		"Image uploaded successfully"), canWrite...)
	images.DELETE("/:id", handler.HandleNoContent(ih.Handler, ih.DeleteImage, http.StatusOK,
		"Image deleted successfully"), canWrite...)

	// hero images
	hh := h.HeroImages
	hero := api.Group("/hero-images")
	canWrite = writer(model.TaskHeroImages)
	hero.GET("", handler.Handle(hh.Handler, hh.ListHeroImages, http.StatusOK))
	hero.POST("/upload", handler.HandleWithMessage(hh.Handler, hh.UploadHeroImage, http.StatusCreated,
		"Hero image uploaded successfully"), canWrite...)
	hero.PATCH("/:id/order", handler.HandleWithMessage(hh.Handler, hh.UpdateOrder, http.StatusOK,
		"Hero image order updated successfully"), canWrite...)
	hero.DELETE("/:id", handler.HandleWithMessage(hh.Handler, hh.DeleteHeroImage, http.StatusOK,
		"Hero image deleted successfully"), canWrite...)

	// infrastructure
	fh := h.Infrastructure
	infra := api.Group("/infrastructure")
	canWrite = writer(model.TaskInfrastructure)
	infra.GET("", handler.Handle(fh.Handler, fh.ListInfrastructure, http.StatusOK))
	infra.GET("/subcategory/:subcategory", handler.Handle(fh.Handler, fh.ListBySubcategory, http.StatusOK))
	infra.POST("", handler.HandleWithMessage(fh.Handler, fh.SaveInfrastructure, http.StatusOK,
		"Infrastructure saved successfully"), canWrite...)
	infra.DELETE("/:id", handler.HandleNoContent(fh.Handler, fh.DeleteInfrastructure, http.StatusOK,
		"Infrastructure item deleted successfully"), canWrite...)

	// historical
	xh := h.Historical
	hist := api.Group("/historical")
	canWrite = writer(model.TaskHistorical)
	hist.GET("", handler.Handle(xh.Handler, xh.GetHistorical, http.StatusOK))
	hist.POST("", handler.HandleWithMessage(xh.Handler, xh.SaveHistorical, http.StatusOK,
		"Historical data saved successfully"), canWrite...)
	hist.DELETE("/events/:id", handler.HandleNoContent(xh.Handler, xh.DeleteEvent, http.StatusOK,
		"Event deleted successfully"), canWrite...)
	hist.DELETE("/places/:id", handler.HandleNoContent(xh.Handler, xh.DeletePlace, http.StatusOK,
		"Place deleted successfully"), canWrite...)
	hist.DELETE("/awards/:id", handler.HandleNoContent(xh.Handler, xh.DeleteAward, http.StatusOK,
		"Award deleted successfully"), canWrite...)

	// grampanchayat info
	gh := h.Grampanchayat
	gp := api.Group("/grampanchayat")
	gp.GET("", handler.Handle(gh.Handler, gh.GetGrampanchayat, http.StatusOK))
	gp.POST("", handler.HandleWithMessage(gh.Handler, gh.SaveGrampanchayat, http.StatusOK,
		"Grampanchayat information saved successfully"), writer(model.TaskGrampanchayat)...)

	// announcements
	ah := h.Announcements
	ann := api.Group("/announcements")
	canWrite = writer(model.TaskAnnouncements)
	ann.GET("", handler.Handle(ah.Handler, ah.ListAnnouncements, http.StatusOK))
	ann.POST("", handler.HandleWithMessage(ah.Handler, ah.SaveAnnouncements, http.StatusOK,
		"Announcements saved successfully"), canWrite...)
	ann.POST("/upload", handler.HandleWithMessage(ah.Handler, ah.UploadDocument, http.StatusOK,
		"Document uploaded successfully"), canWrite...)
	ann.DELETE("/:id", handler.HandleNoContent(ah.Handler, ah.DeleteAnnouncement, http.StatusOK,
		"Announcement deleted successfully"), canWrite...)
}

func registerWebsiteRoutes(api *echo.Group, h *handler.Handlers) {
	wh := h.Website
	website := api.Group("/website")
	website.GET("/all", handler.Handle(wh.Handler, wh.GetAll, http.StatusOK))
	website.GET("/officials", handler.Handle(wh.Handler, wh.GetOfficials, http.StatusOK))
	website.GET("/gallery", handler.Handle(wh.Handler, wh.GetGallery, http.StatusOK))
}
