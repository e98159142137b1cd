package router

import (
	"net/http"

	"user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/gin/middleware"
	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var readMethods = []string{http.MethodGet, http.MethodHead}

// SetupRouter configures and returns a Gin router with all routes and middleware.
// Images are served from imagesDir under /images.
func SetupRouter(userHandler *handler.UserHandler, imagesDir string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// Trailing slashes are matched explicitly instead of redirected
	router.RedirectTrailingSlash = false

	// Global middleware; Recovery sits innermost so the access log sees its 500s
	router.Use(logger.RequestIDMiddleware())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	router.Match(readMethods, "/", userHandler.Index)

	// Missing files, directories and dotfiles get the NoRoute envelope
	images := handler.NewImageHandler(imagesDir, log)
	router.Match(readMethods, "/images/*filepath", images.ServeImage)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			matchSlashTolerant(users, "", userHandler.ListUsers)
			matchSlashTolerant(users, "/:id", userHandler.GetUser)
			matchSlashTolerant(users, "/registration/:regNumber", userHandler.GetUserByRegistrationNumber)
		}
	}

	router.NoRoute(handler.RouteNotFound)

	return router
}

// matchSlashTolerant registers path both with and without a trailing slash
func matchSlashTolerant(g *gin.RouterGroup, path string, h gin.HandlerFunc) {
	g.Match(readMethods, path, h)
	g.Match(readMethods, path+"/", h)
}
