package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/repository"
	"RailEscape-App/internal/domain/service"
)

// TimetableQuery 駅時刻表の検索条件
type TimetableQuery struct {
	StationID string
	LineID    string
	Time      model.ClockTime
	Calendar  string // 空なら今日の曜日から決める
}

// TransitLookupUseCase 路線・駅・地名・時刻表の参照系
// いずれも取得に失敗した場合は空の結果を返す
type TransitLookupUseCase interface {
	ListLines(ctx context.Context) []model.Line
	ListStations(ctx context.Context, lineID string) []model.Station
	// 見つからない場合はnil
	SearchPlace(ctx context.Context, query string) *model.Place
	StationTimetable(ctx context.Context, q TimetableQuery) []model.TimetableEntry
}

// transitLookupUseCaseImpl はTransitLookupUseCaseの実装
type transitLookupUseCaseImpl struct {
	lineRepo      repository.LineCatalogRepository
	stationRepo   repository.StationListRepository
	timetableRepo repository.StationTimetableRepository
	placeRepo     repository.PlaceSearchRepository
	now           func() time.Time
}

// NewTransitLookupUseCase は新しいTransitLookupUseCaseインスタンスを作成
func NewTransitLookupUseCase(
	lineRepo repository.LineCatalogRepository,
	stationRepo repository.StationListRepository,
	timetableRepo repository.StationTimetableRepository,
	placeRepo repository.PlaceSearchRepository,
) TransitLookupUseCase {
	return &transitLookupUseCaseImpl{
		lineRepo:      lineRepo,
		stationRepo:   stationRepo,
		timetableRepo: timetableRepo,
		placeRepo:     placeRepo,
		now:           time.Now,
	}
}

func (u *transitLookupUseCaseImpl) ListLines(ctx context.Context) []model.Line {
	lines, err := u.lineRepo.ListLines(ctx)
	if err != nil {
		log.Printf("⚠️ 路線一覧の取得に失敗: %v", err)
		return []model.Line{}
	}
	return lines
}

func (u *transitLookupUseCaseImpl) ListStations(ctx context.Context, lineID string) []model.Station {
	if lineID == "" {
		return []model.Station{}
	}
	stations, err := u.stationRepo.FetchStationsInOrder(ctx, lineID)
	if err != nil {
		log.Printf("⚠️ 駅一覧の取得に失敗 (%s): %v", lineID, err)
		return []model.Station{}
	}
	if stations == nil {
		return []model.Station{}
	}
	return stations
}

func (u *transitLookupUseCaseImpl) SearchPlace(ctx context.Context, query string) *model.Place {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	place, err := u.placeRepo.SearchPlace(ctx, query)
	if err != nil {
		log.Printf("⚠️ 地名検索に失敗 (%s): %v", query, err)
		return nil
	}
	return place
}

// StationTimetable は駅時刻表から指定時刻の前後30分の発車を返す
// 見つからない場合は短縮した駅IDで、それでもなければ路線を指定せずに検索し直す
func (u *transitLookupUseCaseImpl) StationTimetable(ctx context.Context, q TimetableQuery) []model.TimetableEntry {
	if q.StationID == "" || q.LineID == "" {
		return []model.TimetableEntry{}
	}
	calendar := q.Calendar
	if calendar == "" {
		calendar = service.DefaultCalendar(u.now())
	}

	stationID := q.StationID
	tables, err := u.timetableRepo.FetchStationTimetables(ctx, stationID, q.LineID)
	if err == nil && len(tables) == 0 {
		if short := service.ShortStationID(stationID); short != "" {
			stationID = short
			tables, err = u.timetableRepo.FetchStationTimetables(ctx, stationID, q.LineID)
		}
	}
	if err == nil && len(tables) == 0 {
		tables, err = u.timetableRepo.FetchStationTimetables(ctx, stationID, "")
	}
	if err != nil {
		log.Printf("⚠️ 駅時刻表の取得に失敗 (%s): %v", q.StationID, err)
		return []model.TimetableEntry{}
	}

	return service.FilterTimetable(tables, q.LineID, calendar, q.Time)
}
