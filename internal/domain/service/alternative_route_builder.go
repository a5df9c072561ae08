package service

import (
	"log"
	"math"

	"RailEscape-App/internal/domain/model"
)

const (
	// BusMinutesPerKm バスの所要時間の目安（時速20km + 信号待ちで約3分/km）
	BusMinutesPerKm = 3.0
	// MinBusTravelMinutes 所要時間の下限
	MinBusTravelMinutes = 10
	// DefaultBusTravelMinutes 座標が揃わない場合の所要時間
	DefaultBusTravelMinutes = 20
)

// AlternativeRouteBuilder はバスによる代替ルート案を組み立てる
type AlternativeRouteBuilder struct{}

// NewAlternativeRouteBuilder は新しいAlternativeRouteBuilderインスタンスを作成する
func NewAlternativeRouteBuilder() *AlternativeRouteBuilder {
	return &AlternativeRouteBuilder{}
}

// EstimateBusTravelMinutes は2地点間の直線距離からバスの所要時間(分)を見積もる
func (b *AlternativeRouteBuilder) EstimateBusTravelMinutes(from, to *model.Coordinate) int {
	if from == nil || to == nil {
		return DefaultBusTravelMinutes
	}
	km := model.FlatEarthDistanceKm(*from, *to)
	minutes := int(math.Round(km * BusMinutesPerKm))
	return max(minutes, MinBusTravelMinutes)
}

// EstimateArrival は出発時刻に所要時間を足した到着時刻を "HH:MM" で返す（24時で折り返す）
// 出発時刻が読めない場合は 08:00 発として計算する
func (b *AlternativeRouteBuilder) EstimateArrival(departure string, travelMinutes int) string {
	t, err := model.ParseClockTime(departure)
	if err != nil {
		log.Printf("⚠️ 出発時刻を解釈できないため %s として計算: %v", model.DefaultDepartureTime, err)
		t, _ = model.ParseClockTime(model.DefaultDepartureTime)
	}
	return t.AddMinutes(travelMinutes).String()
}

// BuildBusPlan は遅延区間と起点・終点のバス停から代替ルート案を作成する
// どちらかのバス停が見つからない場合はnil
func (b *AlternativeRouteBuilder) BuildBusPlan(
	alertIndex int,
	alertLeg model.EvaluatedLeg,
	origin *model.Coordinate,
	startSpots, endSpots []model.AlternativeSpot,
) *model.AlternativeRoutePlan {
	if len(startSpots) == 0 || len(endSpots) == 0 {
		return nil
	}
	startBus, endBus := startSpots[0], endSpots[0]

	endCoord := endBus.Coordinate()
	travel := b.EstimateBusTravelMinutes(origin, &endCoord)

	originalTime := alertLeg.Time
	if originalTime == "" {
		originalTime = model.DefaultDepartureTime
	}

	return &model.AlternativeRoutePlan{
		AlertIndex:        alertIndex,
		StartStation:      alertLeg.StartStation,
		EndStation:        alertLeg.EndStation,
		OriginalTime:      originalTime,
		StartBusStop:      orPlaceholder(startBus.Name, model.PlaceholderBusStopName),
		StartBusLine:      orPlaceholder(startBus.Line, model.PlaceholderBusLine),
		StartBusDest:      orPlaceholder(startBus.Destination, model.PlaceholderBusDestination),
		EndBusStop:        orPlaceholder(endBus.Name, model.PlaceholderBusStopName),
		EndBusLine:        orPlaceholder(endBus.Line, model.PlaceholderBusLine),
		EndBusDest:        orPlaceholder(endBus.Destination, model.PlaceholderBusDestination),
		ArrivalTime:       b.EstimateArrival(originalTime, travel),
		TravelTimeMinutes: travel,
	}
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
