package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/kasraef/blog-backend/internal/handler"    // import the handlers that implement business logic
	"github.com/kasraef/blog-backend/internal/middleware" // import middleware for JWT authentication and caching
)

// RegisterRoutes registers routes that do not belong to a specific feature
// area. Currently that is only the health check, used by load balancers and
// monitoring systems to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints. Neither
// requires an existing session; both paths are kept as the frontend has
// always known them.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
}

// RegisterPosts registers the blog endpoints. Listing is public and sits
// behind the Redis response cache; creation requires a valid session token,
// which is the whole extent of authorization in this API: authenticated
// or not.
func RegisterPosts(e *echo.Echo, p *handler.PostHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/getAllPosts", p.GetAllPosts, cache)
	e.POST("/addblog", p.AddBlog, middleware.JWTAuth(jwtSecret))
}

// RegisterRewrite registers the text-rewrite proxy endpoint.
func RegisterRewrite(e *echo.Echo, r *handler.RewriteHandler) {
	e.POST("/chatwithgemini", r.Rewrite)
}
