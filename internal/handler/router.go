package handler

import "github.com/gin-gonic/gin"

// ServiceName ヘルスチェックで返すサービス名
const ServiceName = "RailEscape-App"

// NewRouter はAPIのルーティングを設定したGinエンジンを作成する
func NewRouter(advisoryHandler *AdvisoryHandler, lookupHandler *TransitLookupHandler, healthHandler *HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.GetHealth)
		api.POST("/check_timeline", advisoryHandler.PostCheckTimeline)
		api.GET("/lines", lookupHandler.GetLines)
		api.GET("/stations_list", lookupHandler.GetStationsList)
		api.GET("/search_place", lookupHandler.GetSearchPlace)
		api.GET("/station_timetable", lookupHandler.GetStationTimetable)
	}

	return r
}
