package repository

import (
	"context"

	"RailEscape-App/internal/domain/model"
)

// LineCatalogRepository 路線カタログ
type LineCatalogRepository interface {
	ListLines(ctx context.Context) ([]model.Line, error)
}

// StationListRepository 路線の駅一覧を駅順で取得する
type StationListRepository interface {
	FetchStationsInOrder(ctx context.Context, lineID string) ([]model.Station, error)
}

// StationTimetableRepository 駅時刻表を取得する（lineIDが空なら路線で絞り込まない）
type StationTimetableRepository interface {
	FetchStationTimetables(ctx context.Context, stationID, lineID string) ([]model.StationTimetable, error)
}

// PlaceSearchRepository 地名を検索する
type PlaceSearchRepository interface {
	// 見つからない場合は (nil, nil)
	SearchPlace(ctx context.Context, query string) (*model.Place, error)
}
