package strategy

import (
	"context"
	"log"

	"RailEscape-App/internal/domain/helper"
	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
)

const (
	// BikeSearchRadiusMeters この距離未満のポートのみを候補にする
	BikeSearchRadiusMeters = 500.0
	// BikeMaxResults 返すポートの最大件数
	BikeMaxResults = 10
)

// BikeShareStrategy はシェアサイクルのポートを探す戦略
type BikeShareStrategy struct {
	portRepo repository.BikePortRepository
}

// NewBikeShareStrategy は新しいシェアサイクル戦略を作成する
func NewBikeShareStrategy(portRepo repository.BikePortRepository) *BikeShareStrategy {
	return &BikeShareStrategy{portRepo: portRepo}
}

// Kind は代替手段（自転車）を返す
func (s *BikeShareStrategy) Kind() model.FallbackKind {
	return model.FallbackBike
}

// Locate は座標から500m未満のポートを近い順に最大10件返す
func (s *BikeShareStrategy) Locate(ctx context.Context, at *model.Coordinate) []model.AlternativeSpot {
	if at == nil {
		return []model.AlternativeSpot{}
	}

	ports, err := s.portRepo.FetchBikePorts(ctx)
	if err != nil {
		log.Printf("⚠️ シェアサイクルポートの取得に失敗: %v", err)
		return []model.AlternativeSpot{}
	}

	spots := make([]model.AlternativeSpot, 0, len(ports))
	for _, p := range ports {
		spot := model.NewAlternativeSpot(model.FallbackBike, p.Name, p.Location, *at)
		bikes, docks := p.BikesAvailable, p.DocksAvailable
		spot.BikesAvailable = &bikes
		spot.DocksAvailable = &docks
		spots = append(spots, spot)
	}

	spots = helper.FilterWithinMeters(spots, BikeSearchRadiusMeters)
	return helper.Nearest(spots, BikeMaxResults)
}
