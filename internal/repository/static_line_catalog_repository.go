package repository

import (
	"context"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
)

// 主要路線定義
var defaultLines = []model.Line{
	// --- JR東日本 ---
	{ID: "odpt.Railway:JR-East.ChuoRapid", Name: "JR 中央線快速"},
	{ID: "odpt.Railway:JR-East.Yamanote", Name: "JR 山手線"},
	{ID: "odpt.Railway:JR-East.KeihinTohokuNegishi", Name: "JR 京浜東北線"},
	{ID: "odpt.Railway:JR-East.ChuoSobuLocal", Name: "JR 総武線(各停)"},
	{ID: "odpt.Railway:JR-East.SaikyoKawagoe", Name: "JR 埼京線"},
	{ID: "odpt.Railway:JR-East.JobanRapid", Name: "JR 常磐線(快速)"},
	{ID: "odpt.Railway:JR-East.JobanLocal", Name: "JR 常磐線(各停)"},
	{ID: "odpt.Railway:JR-East.ShonanShinjuku", Name: "JR 湘南新宿ライン"},
	// --- 東京メトロ ---
	{ID: "odpt.Railway:TokyoMetro.Ginza", Name: "東京メトロ 銀座線"},
	{ID: "odpt.Railway:TokyoMetro.Marunouchi", Name: "東京メトロ 丸ノ内線"},
	{ID: "odpt.Railway:TokyoMetro.Hibiya", Name: "東京メトロ 日比谷線"},
	{ID: "odpt.Railway:TokyoMetro.Tozai", Name: "東京メトロ 東西線"},
	{ID: "odpt.Railway:TokyoMetro.Chiyoda", Name: "東京メトロ 千代田線"},
	{ID: "odpt.Railway:TokyoMetro.Yurakucho", Name: "東京メトロ 有楽町線"},
	{ID: "odpt.Railway:TokyoMetro.Hanzomon", Name: "東京メトロ 半蔵門線"},
	{ID: "odpt.Railway:TokyoMetro.Namboku", Name: "東京メトロ 南北線"},
	{ID: "odpt.Railway:TokyoMetro.Fukutoshin", Name: "東京メトロ 副都心線"},
	// --- 都営地下鉄 ---
	{ID: "odpt.Railway:Toei.Asakusa", Name: "都営 浅草線"},
	{ID: "odpt.Railway:Toei.Mita", Name: "都営 三田線"},
	{ID: "odpt.Railway:Toei.Shinjuku", Name: "都営 新宿線"},
	{ID: "odpt.Railway:Toei.Oedo", Name: "都営 大江戸線"},
	{ID: "odpt.Railway:Toei.NipporiToneri", Name: "都営 日暮里・舎人ライナー"},
	// --- 私鉄 ---
	{ID: "odpt.Railway:Keio.Keio", Name: "京王電鉄 京王線"},
	{ID: "odpt.Railway:Keio.Inokashira", Name: "京王電鉄 井の頭線"},
	{ID: "odpt.Railway:Odakyu.Odawara", Name: "小田急電鉄 小田原線"},
}

// StaticLineCatalogRepository 組み込みの路線一覧
type StaticLineCatalogRepository struct {
	lines []model.Line
}

// NewStaticLineCatalogRepository 組み込みの路線一覧を返すリポジトリを作成
func NewStaticLineCatalogRepository() repository.LineCatalogRepository {
	return &StaticLineCatalogRepository{lines: defaultLines}
}

func (r *StaticLineCatalogRepository) ListLines(ctx context.Context) ([]model.Line, error) {
	lines := make([]model.Line, len(r.lines))
	copy(lines, r.lines)
	return lines, nil
}
