package helper

import (
	"sort"

	"RailEscape-App/internal/domain/model"
)

// FilterWithinMeters は検索地点から limitMeters 未満のスポットのみを抽出する
// 丸める前の距離で判定するため、ちょうど limitMeters のスポットは含まない
func FilterWithinMeters(spots []model.AlternativeSpot, limitMeters float64) []model.AlternativeSpot {
	filtered := make([]model.AlternativeSpot, 0, len(spots))
	for _, s := range spots {
		if s.ExactDistanceKm*1000 < limitMeters {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SortByDistance は検索地点から近い順にスポットを並べる（同じ距離なら元の順序を保つ）
func SortByDistance(spots []model.AlternativeSpot) {
	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].ExactDistanceKm < spots[j].ExactDistanceKm
	})
}

// Nearest は近い順に並べ替えて先頭 limit 件を返す（limit <= 0 なら全件）
func Nearest(spots []model.AlternativeSpot, limit int) []model.AlternativeSpot {
	SortByDistance(spots)
	if limit > 0 && len(spots) > limit {
		return spots[:limit]
	}
	return spots
}
