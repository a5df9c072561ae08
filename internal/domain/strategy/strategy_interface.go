package strategy

import (
	"context"

	"RailEscape-App/internal/domain/model"
)

// LocatorStrategy は、指定座標の周辺から代替交通手段のスポットを探す戦略のインターフェース
type LocatorStrategy interface {
	// この戦略が扱う代替手段
	Kind() model.FallbackKind

	// 座標の周辺スポットを近い順に返す
	// 座標がnilの場合は外部APIを呼ばずに空を返す
	// 取得に失敗した場合もエラーにはせず空を返す
	Locate(ctx context.Context, at *model.Coordinate) []model.AlternativeSpot
}
