package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/strategy"
)

// AdvisoryInput 遅延チェック1回分の入力
type AdvisoryInput struct {
	Itinerary           model.Itinerary
	DefaultOrigin       model.Coordinate
	DestinationOverride *model.Coordinate
	FallbackKind        model.FallbackKind
}

// ReRouteEngine は区間の遅延判定から代替手段の提案までを行う
type ReRouteEngine interface {
	ComputeAdvisory(ctx context.Context, in AdvisoryInput) *model.AdvisoryResult
}

type reRouteEngine struct {
	evaluator    *ParallelLegEvaluator
	signals      *TransitSignalService
	locators     map[model.FallbackKind]strategy.LocatorStrategy
	routeBuilder *AlternativeRouteBuilder
	newRequestID func() string
}

// NewReRouteEngine は代替手段ごとの探索戦略を登録したエンジンを作成する
func NewReRouteEngine(signals *TransitSignalService, evaluator *ParallelLegEvaluator, locators ...strategy.LocatorStrategy) ReRouteEngine {
	byKind := make(map[model.FallbackKind]strategy.LocatorStrategy, len(locators))
	for _, l := range locators {
		byKind[l.Kind()] = l
	}
	return &reRouteEngine{
		evaluator:    evaluator,
		signals:      signals,
		locators:     byKind,
		routeBuilder: NewAlternativeRouteBuilder(),
		newRequestID: uuid.NewString,
	}
}

// ComputeAdvisory は全区間を評価し、出発側・到着側の代替スポットと（バスの場合は）代替ルート案を返す
// 外部APIの失敗はすべて既定値として扱い、常に結果を返す
func (e *reRouteEngine) ComputeAdvisory(ctx context.Context, in AdvisoryInput) *model.AdvisoryResult {
	requestID := e.newRequestID()
	log.Printf("🚀 [%s] 遅延チェック開始: %d区間, 代替手段=%s", requestID, len(in.Itinerary), in.FallbackKind)

	result := &model.AdvisoryResult{
		RequestID:  requestID,
		Timeline:   e.evaluator.EvaluateLegs(ctx, in.Itinerary),
		StartSpots: []model.AlternativeSpot{},
		EndSpots:   []model.AlternativeSpot{},
		StartPoint: in.DefaultOrigin,
	}
	for _, leg := range result.Timeline {
		if leg.Alert {
			result.HasTrouble = true
			break
		}
	}

	// 目的地と（遅延時の）起点は互いに独立
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.EndPoint = e.detourDestination(ctx, in.Itinerary, in.DestinationOverride)
	}()
	if result.HasTrouble {
		if origin := e.detourOrigin(ctx, result.Timeline); origin != nil {
			result.StartPoint = *origin
		}
	}
	wg.Wait()

	locator, ok := e.locatorFor(in.FallbackKind)
	if !ok {
		log.Printf("⚠️ [%s] 代替手段 %s の探索戦略が未登録", requestID, in.FallbackKind)
		return result
	}

	result.StartSpots, result.EndSpots = e.locateBothEnds(ctx, locator, result.StartPoint, result.EndPoint)

	if result.HasTrouble && locator.Kind() == model.FallbackBus {
		alertIdx := result.FirstAlertIndex()
		alertLeg := result.Timeline[alertIdx]

		// 遅延区間の降車駅周辺で到着側のバス停を探し直す
		if alertEnd := e.signals.StationCoordinate(ctx, alertLeg.Leg.EndStationID); alertEnd != nil {
			result.EndSpots = locator.Locate(ctx, alertEnd)
		}

		start := result.StartPoint
		result.BusAlternative = e.routeBuilder.BuildBusPlan(alertIdx, alertLeg, &start, result.StartSpots, result.EndSpots)
	}

	log.Printf("✅ [%s] 遅延チェック完了: %s", requestID, result.Summary())
	return result
}

// detourDestination 目的地の上書き指定 → 最終区間の降車駅 → 最終区間の乗車駅 の順に決める
func (e *reRouteEngine) detourDestination(ctx context.Context, legs model.Itinerary, override *model.Coordinate) *model.Coordinate {
	if override.IsUsable() {
		dest := *override
		return &dest
	}
	if len(legs) == 0 {
		return nil
	}

	last := legs[len(legs)-1]
	if geo := e.signals.StationCoordinate(ctx, last.EndStationID); geo != nil {
		return geo
	}
	return e.signals.StationCoordinate(ctx, last.StartStationID)
}

// detourOrigin 最初の遅延区間より前で最後に平常運転の区間の降車駅を起点にする
// そのような区間がなければ遅延区間の乗車駅。解決できなければnil
func (e *reRouteEngine) detourOrigin(ctx context.Context, timeline []model.EvaluatedLeg) *model.Coordinate {
	firstAlert := -1
	for i, leg := range timeline {
		if leg.Alert {
			firstAlert = i
			break
		}
	}
	if firstAlert < 0 {
		return nil
	}

	// 最初の遅延区間より前はすべて平常運転
	if firstAlert > 0 {
		return e.signals.StationCoordinate(ctx, timeline[firstAlert-1].Leg.EndStationID)
	}

	// 乗車駅の座標は評価時に取得済み
	if geo := timeline[firstAlert].StartGeo; geo != nil {
		return geo
	}
	return e.signals.StationCoordinate(ctx, timeline[firstAlert].Leg.StartStationID)
}

func (e *reRouteEngine) locatorFor(kind model.FallbackKind) (strategy.LocatorStrategy, bool) {
	if l, ok := e.locators[kind]; ok {
		return l, true
	}
	l, ok := e.locators[model.FallbackBike]
	return l, ok
}

// locateBothEnds は起点と目的地の周辺スポットを並行で探す（目的地がnilなら到着側は空）
func (e *reRouteEngine) locateBothEnds(ctx context.Context, locator strategy.LocatorStrategy, origin model.Coordinate, dest *model.Coordinate) ([]model.AlternativeSpot, []model.AlternativeSpot) {
	var (
		startSpots []model.AlternativeSpot
		endSpots   = []model.AlternativeSpot{}
		wg         sync.WaitGroup
	)

	if dest != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			endSpots = locator.Locate(ctx, dest)
		}()
	}
	startSpots = locator.Locate(ctx, &origin)
	wg.Wait()

	return startSpots, endSpots
}
