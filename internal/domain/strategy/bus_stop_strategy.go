package strategy

import (
	"context"
	"log"

	"RailEscape-App/internal/domain/helper"
	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
)

// BusSearchPadDegrees 検索範囲（座標の前後 ±0.005度 ≒ 500m）
const BusSearchPadDegrees = 0.005

// BusStopStrategy はバス停を探す戦略
// 路線・行き先はバス停名と拠点名の部分一致で付与する簡易的なもの
type BusStopStrategy struct {
	stopRepo  repository.BusStopRepository
	lineTable model.BusLineTable
}

// NewBusStopStrategy は新しいバス停戦略を作成する
func NewBusStopStrategy(stopRepo repository.BusStopRepository, lineTable model.BusLineTable) *BusStopStrategy {
	return &BusStopStrategy{
		stopRepo:  stopRepo,
		lineTable: lineTable,
	}
}

// Kind は代替手段（バス）を返す
func (s *BusStopStrategy) Kind() model.FallbackKind {
	return model.FallbackBus
}

// Locate は座標周辺のバス停を近い順にすべて返す（距離による足切りはしない）
func (s *BusStopStrategy) Locate(ctx context.Context, at *model.Coordinate) []model.AlternativeSpot {
	if at == nil {
		return []model.AlternativeSpot{}
	}

	stops, err := s.stopRepo.SearchBusStops(ctx, at.SearchBound(BusSearchPadDegrees))
	if err != nil {
		log.Printf("⚠️ バス停の検索に失敗: %v", err)
		return []model.AlternativeSpot{}
	}

	spots := make([]model.AlternativeSpot, 0, len(stops))
	for _, stop := range stops {
		name := model.ShortPlaceName(stop.DisplayName)
		spot := model.NewAlternativeSpot(model.FallbackBus, name, stop.Location, *at)
		info := s.lineTable.Lookup(name)
		spot.Line = info.Line
		spot.Destination = info.Destination
		spots = append(spots, spot)
	}

	return helper.Nearest(spots, 0)
}
