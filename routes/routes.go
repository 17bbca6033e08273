package routes

import (
	"tagnest/auth"
	"tagnest/captions"
	"tagnest/extract"
	"tagnest/middleware"
	"tagnest/ratelim"
	"tagnest/stream"
	"tagnest/tags"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/v1/auth/register", rl.Limit(auth.Register))
	router.POST("/api/v1/auth/login", rl.Limit(auth.Login))
	router.POST("/api/v1/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/v1/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddExtractRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/v1/extract", rl.Limit(middleware.OptionalAuth(extract.ExtractHandler)))
}

func AddCaptionRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *stream.Hub) {
	router.POST("/api/v1/captions", rl.Limit(middleware.Authenticate(captions.CreateCaption(hub))))
	router.GET("/api/v1/captions/:captionid", captions.GetCaption)
	router.DELETE("/api/v1/captions/:captionid", middleware.Authenticate(captions.DeleteCaption))
}

// Static paths use the plural prefix, parameterised ones the singular, so
// httprouter never sees a static/param conflict in one segment.
func AddTagRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tags/trending", tags.GetTrendingTags)
	router.GET("/api/v1/tags/trending/report", tags.TrendingReport)
	router.GET("/api/v1/tag/:tag", tags.GetTag)
	router.GET("/api/v1/tag/:tag/captions", captions.GetCaptionsByTag)
	router.GET("/api/v1/tag/:tag/qr", tags.TagQR)
	router.GET("/api/v1/mention/:handle/captions", captions.GetCaptionsByMention)
}

func AddStreamRoutes(router *httprouter.Router, hub *stream.Hub) {
	router.GET("/ws/tags/:tag", stream.TagStreamHandler(hub))
}
