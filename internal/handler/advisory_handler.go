package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/usecase"
)

// AdvisoryHandler は遅延チェックAPIのハンドラー
type AdvisoryHandler struct {
	advisoryUseCase usecase.AdvisoryUseCase
}

// NewAdvisoryHandler は新しいAdvisoryHandlerインスタンスを作成
func NewAdvisoryHandler(advisoryUseCase usecase.AdvisoryUseCase) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryUseCase: advisoryUseCase}
}

// PostCheckTimeline は経路の遅延をチェックし、代替手段を提案するエンドポイント
// POST /api/check_timeline?lat=&lon=&method=bike|bus
func (h *AdvisoryHandler) PostCheckTimeline(c *gin.Context) {
	var legs []model.LegRequest

	// リクエストボディのバインド（区間の配列）
	if err := c.ShouldBindJSON(&legs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	origin, err := parseOrigin(c.Query("lat"), c.Query("lon"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	req := &model.AdvisoryRequest{
		Legs:         legs,
		Origin:       origin,
		FallbackKind: model.ParseFallbackKind(c.DefaultQuery("method", string(model.FallbackBike))),
	}

	// 外部APIの失敗は結果の既定値に含まれるため、常に200を返す
	c.JSON(http.StatusOK, h.advisoryUseCase.CheckTimeline(c.Request.Context(), req))
}

// parseOrigin はクエリの緯度経度を読む（両方なければnilで既定の起点を使う）
func parseOrigin(latStr, lonStr string) (*model.Coordinate, error) {
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, &ValidationError{Field: "lat,lon", Message: "緯度と経度は両方指定してください"}
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, &ValidationError{Field: "lat", Message: "緯度は-90から90の範囲で指定してください"}
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, &ValidationError{Field: "lon", Message: "経度は-180から180の範囲で指定してください"}
	}
	return model.NewCoordinate(lat, lon), nil
}
