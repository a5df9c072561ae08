package usecase

import (
	"context"
	"log"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/service"
)

// AdvisoryUseCase 乗換経路の遅延チェック
type AdvisoryUseCase interface {
	// CheckTimeline は経路の各区間を評価し、遅延時の代替手段を提案する
	// 外部APIの失敗は結果の既定値として表れ、エラーは返さない
	CheckTimeline(ctx context.Context, req *model.AdvisoryRequest) *model.AdvisoryResult
}

// advisoryUseCaseImpl はAdvisoryUseCaseの実装
type advisoryUseCaseImpl struct {
	engine        service.ReRouteEngine
	defaultOrigin model.Coordinate
}

// NewAdvisoryUseCase は新しいAdvisoryUseCaseインスタンスを作成
func NewAdvisoryUseCase(engine service.ReRouteEngine, defaultOrigin model.Coordinate) AdvisoryUseCase {
	return &advisoryUseCaseImpl{
		engine:        engine,
		defaultOrigin: defaultOrigin,
	}
}

// CheckTimeline はリクエストを経路に変換してエンジンに渡す
func (u *advisoryUseCaseImpl) CheckTimeline(ctx context.Context, req *model.AdvisoryRequest) *model.AdvisoryResult {
	in := service.AdvisoryInput{
		Itinerary:     make(model.Itinerary, 0, len(req.Legs)),
		DefaultOrigin: u.defaultOrigin,
		FallbackKind:  req.FallbackKind,
	}
	if req.Origin != nil {
		in.DefaultOrigin = *req.Origin
	}
	if in.FallbackKind == "" {
		in.FallbackKind = model.FallbackBike
	}

	in.DestinationOverride = destinationOverride(req.Legs)

	for i, legReq := range req.Legs {
		if legReq.LineID == "" {
			log.Printf("⚠️ 路線IDのない区間をスキップ (%d番目: %s)", i, legReq.LineName)
			continue
		}
		in.Itinerary = append(in.Itinerary, legReq.ToLeg())
	}

	return u.engine.ComputeAdvisory(ctx, in)
}

// destinationOverride 最終区間の bike_target を優先し、なければ先頭区間の指定を使う
func destinationOverride(legs []model.LegRequest) *model.Coordinate {
	if len(legs) == 0 {
		return nil
	}
	if dest := legs[len(legs)-1].ToLeg().Destination; dest.IsUsable() {
		return dest
	}
	return legs[0].ToLeg().Destination
}
