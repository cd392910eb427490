package router

import (
	"seoulmate/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommend")
	reco.POST("", handler.Recommend)
	reco.POST("/debug", handler.DebugRecommend)
}

func SetupRegionRoutes(api *echo.Group, handler *rest.RegionHandler) {
	api.GET("/regions", handler.GetRegions)
	api.GET("/industries", handler.GetIndustries)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Health)
}
