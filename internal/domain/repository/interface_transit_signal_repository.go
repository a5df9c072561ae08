package repository

import (
	"context"

	"RailEscape-App/internal/domain/model"
)

// TrainStatusRepository 路線の運行情報テキストを取得する
type TrainStatusRepository interface {
	// 運行情報が1件もない場合は model.StatusNormal を返す
	FetchLineStatusText(ctx context.Context, lineID string) (string, error)
}

// TrainDelayRepository 路線上で稼働中の列車の遅延秒数を取得する
type TrainDelayRepository interface {
	FetchActiveTrainDelays(ctx context.Context, lineID string) ([]int, error)
}

// StationGeoRepository 駅IDから座標を解決する
type StationGeoRepository interface {
	// 見つからない場合は (nil, nil)
	ResolveStationCoordinate(ctx context.Context, stationID string) (*model.Coordinate, error)
}
