package repository

import (
	"context"

	"github.com/paulmach/orb"

	"RailEscape-App/internal/domain/model"
)

// BikePortRepository シェアサイクルのポート一覧（情報と在庫を結合済み）を取得する
type BikePortRepository interface {
	FetchBikePorts(ctx context.Context) ([]model.BikePort, error)
}

// BusStopRepository 境界ボックス内のバス停を検索する
type BusStopRepository interface {
	SearchBusStops(ctx context.Context, bound orb.Bound) ([]model.BusStopCandidate, error)
}
