package httptransport

import (
	"io"
	"net/http"

	"adminconsole-go/internal/app"
	"adminconsole-go/internal/domain/catalog"
	"adminconsole-go/internal/domain/thumbnail"
	"adminconsole-go/internal/domain/validate"
	"adminconsole-go/internal/platform/errors"

	"github.com/gin-gonic/gin"
)

func registerRoutes(api *gin.RouterGroup, appCtx *app.AppContext) {
	h := &handlers{app: appCtx}

	auth := api.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/register", h.register)
	auth.POST("/session", h.refreshSession)
	auth.GET("/session", h.currentSession)
	auth.PUT("/profile", h.updateProfile)
	auth.POST("/logout", h.logout)

	products := api.Group("/products")
	products.GET("", h.listProducts)
	products.GET("/search", h.searchProducts)
	products.POST("", h.createProduct)
	products.GET("/:id", h.getProduct)
	products.PUT("/:id", h.updateProduct)
	products.DELETE("/:id", h.deleteProduct)
	products.PATCH("/thumbnail/:id", h.setThumbnail)
	products.POST("/bulk-delete", h.bulkDelete)
	products.POST("/bulk-status", h.bulkSetStatus)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/metrics", h.dashboardMetrics)
	dashboard.GET("/activities", h.recentActivities)

	notifications := api.Group("/notifications")
	notifications.GET("", h.listNotifications)
	notifications.DELETE("/:id", h.dismissNotification)
	notifications.DELETE("", h.clearNotifications)

	preferences := api.Group("/preferences")
	preferences.GET("", h.getPreferences)
	preferences.PUT("", h.setPreferences)
}

type handlers struct {
	app *app.AppContext
}

func (h *handlers) login(c *gin.Context) {
	var input validate.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	session, err := h.app.Login(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, session, "signed in")
}

func (h *handlers) register(c *gin.Context) {
	var input validate.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	session, err := h.app.Register(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, session, "account created")
}

func (h *handlers) refreshSession(c *gin.Context) {
	session, err := h.app.RefreshSession(c.Request.Context())
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, session, "session refreshed")
}

func (h *handlers) currentSession(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, h.app.Account.Session(), "")
}

func (h *handlers) updateProfile(c *gin.Context) {
	var input validate.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	session, err := h.app.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, session, "profile updated")
}

func (h *handlers) logout(c *gin.Context) {
	if err := h.app.Logout(c.Request.Context()); err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{}, "signed out")
}

func (h *handlers) listProducts(c *gin.Context) {
	h.app.LoadCatalog(c.Request.Context())
	RespondSuccess(c, http.StatusOK, h.app.Catalog.Products(), "")
}

func (h *handlers) searchProducts(c *gin.Context) {
	var input validate.SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid search parameters", gin.H{})
		return
	}

	matches, err := h.app.SearchProducts(input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, matches, "")
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.app.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, product, "")
}

func (h *handlers) createProduct(c *gin.Context) {
	var input validate.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	product, err := h.app.CreateProduct(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, product, "product created")
}

func (h *handlers) updateProduct(c *gin.Context) {
	var patch catalog.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	product, err := h.app.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, product, "product updated")
}

func (h *handlers) deleteProduct(c *gin.Context) {
	ack, err := h.app.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, ack, ack.Message)
}

func (h *handlers) setThumbnail(c *gin.Context) {
	file, err := c.FormFile("thumbnail")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "multipart field thumbnail is required", gin.H{})
		return
	}

	src, err := file.Open()
	if err != nil {
		RespondFailure(c, errors.Wrap(errors.KindIO, "http.set_thumbnail", "failed to open upload", err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		RespondFailure(c, errors.Wrap(errors.KindIO, "http.set_thumbnail", "failed to read upload", err))
		return
	}

	ack, err := h.app.SetProductThumbnail(c.Request.Context(), c.Param("id"), thumbnail.Upload{
		Data:         data,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
	})
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, ack, ack.Message)
}

func (h *handlers) bulkDelete(c *gin.Context) {
	var input validate.BulkDeleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	removed, err := h.app.BulkDelete(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"removed": removed}, "products deleted")
}

func (h *handlers) bulkSetStatus(c *gin.Context) {
	var input validate.BulkStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	updated, err := h.app.BulkSetStatus(c.Request.Context(), input)
	if err != nil {
		RespondFailure(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"updated": updated}, "products updated")
}

func (h *handlers) dashboardMetrics(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, h.app.Metrics.Snapshot(), "")
}

func (h *handlers) recentActivities(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, h.app.Metrics.RecentActivities(), "")
}

func (h *handlers) listNotifications(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, h.app.Notifications.Active(), "")
}

func (h *handlers) dismissNotification(c *gin.Context) {
	h.app.Notifications.Dismiss(c.Param("id"))
	RespondSuccess(c, http.StatusOK, gin.H{}, "dismissed")
}

func (h *handlers) clearNotifications(c *gin.Context) {
	h.app.Notifications.Clear()
	RespondSuccess(c, http.StatusOK, gin.H{}, "cleared")
}

func (h *handlers) getPreferences(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, h.app.Prefs.Preferences(), "")
}

func (h *handlers) setPreferences(c *gin.Context) {
	var body struct {
		Theme       *string `json:"theme"`
		SidebarOpen *bool   `json:"sidebarOpen"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	ctx := c.Request.Context()
	if body.Theme != nil {
		if err := h.app.Prefs.SetTheme(ctx, *body.Theme); err != nil {
			RespondFailure(c, err)
			return
		}
	}
	if body.SidebarOpen != nil {
		if err := h.app.Prefs.SetSidebarOpen(ctx, *body.SidebarOpen); err != nil {
			RespondFailure(c, err)
			return
		}
	}
	RespondSuccess(c, http.StatusOK, h.app.Prefs.Preferences(), "preferences saved")
}
