package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stellarnotes/internal/handler"
	"github.com/stellarnotes/internal/middleware"
	"github.com/stellarnotes/web"
)

// Route binds one method and path pattern to a handler.
type Route struct {
	Method  string
	Path    string
	Name    string
	Handler gin.HandlerFunc
}

// Routes returns the routing table in registration order. Older URL layouts
// are kept next to the current ones and share their handlers.
func Routes(api *handler.API) []Route {
	return []Route{
		{http.MethodGet, "/", "gallery-page", api.ShowGallery},
		{http.MethodGet, "/viewer/", "viewer-page", api.ShowViewer},
		{http.MethodGet, "/ping", "ping", ping},

		// 标注：资源风格
		{http.MethodGet, "/api/", "annotation-list-create", api.ListAnnotations},
		{http.MethodPost, "/api/", "annotation-list-create", api.CreateAnnotation},

		// 标注：函数风格（兼容旧客户端，只读 + 创建）
		{http.MethodGet, "/api/list/", "annotation-list", api.AnnotationList},
		{http.MethodPost, "/api/create/", "annotation-create", api.AnnotationCreate},
		{http.MethodGet, "/api/detail/:id/", "annotation-detail-func", api.AnnotationDetail},

		// 图库
		{http.MethodGet, "/api/gallery/", "gallery-list-create", api.ListGalleryImages},
		{http.MethodPost, "/api/gallery/", "gallery-list-create", api.CreateGalleryImage},
		{http.MethodGet, "/api/gallery/:id/", "gallery-detail", api.GetGalleryImage},
		{http.MethodPut, "/api/gallery/:id/", "gallery-detail", api.UpdateGalleryImage},
		{http.MethodPatch, "/api/gallery/:id/", "gallery-detail", api.PatchGalleryImage},
		{http.MethodDelete, "/api/gallery/:id/", "gallery-detail", api.DeleteGalleryImage},

		{http.MethodGet, "/api/:id/", "annotation-detail", api.GetAnnotation},
		{http.MethodPut, "/api/:id/", "annotation-detail", api.UpdateAnnotation},
		{http.MethodPatch, "/api/:id/", "annotation-detail", api.PatchAnnotation},
		{http.MethodDelete, "/api/:id/", "annotation-detail", api.DeleteAnnotation},
	}
}

// SetupRouter 配置 Gin 引擎、中间件、模板和路由表
func SetupRouter(api *handler.API, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), gin.Recovery())

	r.SetHTMLTemplate(web.Templates())

	for _, route := range Routes(api) {
		r.Handle(route.Method, route.Path, route.Handler)
	}

	return r
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
