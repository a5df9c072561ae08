package service

import (
	"context"
	"log"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
)

// TransitSignalService は路線・駅のリアルタイム情報を取得し、失敗時は既定値に畳み込む
// ここより内側の取得層は FetchError を返すが、ここから外へエラーは出さない
type TransitSignalService struct {
	statusRepo repository.TrainStatusRepository
	delayRepo  repository.TrainDelayRepository
	geoRepo    repository.StationGeoRepository
}

// NewTransitSignalService は新しいTransitSignalServiceを作成する
func NewTransitSignalService(
	statusRepo repository.TrainStatusRepository,
	delayRepo repository.TrainDelayRepository,
	geoRepo repository.StationGeoRepository,
) *TransitSignalService {
	return &TransitSignalService{
		statusRepo: statusRepo,
		delayRepo:  delayRepo,
		geoRepo:    geoRepo,
	}
}

// LineStatus は路線の運行情報テキストを返す（失敗時は "情報なし"）
func (s *TransitSignalService) LineStatus(ctx context.Context, lineID string) string {
	text, err := s.statusRepo.FetchLineStatusText(ctx, lineID)
	if err != nil {
		log.Printf("⚠️ 運行情報の取得に失敗 (%s): %v", lineID, err)
		return model.StatusUnavailable
	}
	if text == "" {
		return model.StatusNormal
	}
	return text
}

// Congestion は路線の混雑度を返す（失敗時はレベル0 "データ取得不可"）
func (s *TransitSignalService) Congestion(ctx context.Context, lineID string) model.CongestionReading {
	delays, err := s.delayRepo.FetchActiveTrainDelays(ctx, lineID)
	if err != nil {
		log.Printf("⚠️ 列車位置情報の取得に失敗 (%s): %v", lineID, err)
		return model.UnavailableReading()
	}
	return ClassifyCongestion(delays)
}

// StationCoordinate は駅の座標を返す（駅IDが空、見つからない、失敗時はnil）
func (s *TransitSignalService) StationCoordinate(ctx context.Context, stationID string) *model.Coordinate {
	if stationID == "" {
		return nil
	}
	coord, err := s.geoRepo.ResolveStationCoordinate(ctx, stationID)
	if err != nil {
		log.Printf("⚠️ 駅座標の取得に失敗 (%s): %v", stationID, err)
		return nil
	}
	return coord
}
