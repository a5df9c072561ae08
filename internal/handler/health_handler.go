package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const databaseCheckTimeout = 2 * time.Second

// DatabaseChecker 路線カタログDBの疎通確認
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler はヘルスチェックAPIのハンドラー
type HealthHandler struct {
	db DatabaseChecker // 未設定ならnil
}

// NewHealthHandler は新しいHealthHandlerインスタンスを作成（DBを使わない場合は nil を渡す）
func NewHealthHandler(db DatabaseChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth GET /api/health - ヘルスチェック
// DBが使えなくても路線一覧は組み込みの一覧で返せるため、ステータスは常に200
func (h *HealthHandler) GetHealth(c *gin.Context) {
	resp := gin.H{"status": "healthy", "service": ServiceName}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), databaseCheckTimeout)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			log.Printf("⚠️ 路線カタログDBのヘルスチェックに失敗: %v", err)
			resp["database"] = "degraded"
		} else {
			resp["database"] = "ok"
		}
	}

	c.JSON(http.StatusOK, resp)
}
