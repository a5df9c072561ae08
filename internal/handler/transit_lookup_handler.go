package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/usecase"
)

// TransitLookupHandler は路線・駅・地名・時刻表の参照APIのハンドラー
type TransitLookupHandler struct {
	lookupUseCase usecase.TransitLookupUseCase
}

// NewTransitLookupHandler は新しいTransitLookupHandlerインスタンスを作成
func NewTransitLookupHandler(lookupUseCase usecase.TransitLookupUseCase) *TransitLookupHandler {
	return &TransitLookupHandler{lookupUseCase: lookupUseCase}
}

// GetLines GET /api/lines - 路線一覧
func (h *TransitLookupHandler) GetLines(c *gin.Context) {
	c.JSON(http.StatusOK, h.lookupUseCase.ListLines(c.Request.Context()))
}

// GetStationsList GET /api/stations_list?line_id= - 路線の駅一覧（駅順）
func (h *TransitLookupHandler) GetStationsList(c *gin.Context) {
	c.JSON(http.StatusOK, h.lookupUseCase.ListStations(c.Request.Context(), c.Query("line_id")))
}

// GetSearchPlace GET /api/search_place?q= - 地名検索
func (h *TransitLookupHandler) GetSearchPlace(c *gin.Context) {
	place := h.lookupUseCase.SearchPlace(c.Request.Context(), c.Query("q"))
	if place == nil {
		c.JSON(http.StatusOK, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, place)
}

// GetStationTimetable GET /api/station_timetable?station_id=&line_id=&time=HH:MM&calendar=
func (h *TransitLookupHandler) GetStationTimetable(c *gin.Context) {
	target, err := model.ParseClockTime(c.DefaultQuery("time", model.DefaultDepartureTime))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": (&ValidationError{Field: "time", Message: "時刻はHH:MM形式で指定してください"}).Error(),
		})
		return
	}

	entries := h.lookupUseCase.StationTimetable(c.Request.Context(), usecase.TimetableQuery{
		StationID: c.Query("station_id"),
		LineID:    c.Query("line_id"),
		Time:      target,
		Calendar:  c.Query("calendar"),
	})
	c.JSON(http.StatusOK, entries)
}
