package model

import (
	"fmt"
	"math"
)

// FallbackKind 遅延時の代替手段
type FallbackKind string

const (
	FallbackBike FallbackKind = "bike"
	FallbackBus  FallbackKind = "bus"
)

// ParseFallbackKind 文字列から代替手段を決める（不明な値は自転車）
func ParseFallbackKind(s string) FallbackKind {
	if FallbackKind(s) == FallbackBus {
		return FallbackBus
	}
	return FallbackBike
}

// EvaluatedLeg 運行情報と混雑度を付与した区間
type EvaluatedLeg struct {
	LineName     string            `json:"line_name"`
	StartStation string            `json:"start_station"`
	EndStation   string            `json:"end_station"`
	StartGeo     *Coordinate       `json:"start_geo"`
	Time         string            `json:"time"`
	Status       string            `json:"status"`
	Alert        bool              `json:"alert"`
	Congestion   CongestionReading `json:"congestion"`

	Leg Leg `json:"-"`
}

// AlternativeSpot シェアサイクルのポートまたはバス停
type AlternativeSpot struct {
	Kind           FallbackKind `json:"type"`
	Name           string       `json:"name"`
	Lat            float64      `json:"lat"`
	Lon            float64      `json:"lon"`
	DistanceMeters int          `json:"dist"`

	// 自転車のみ
	BikesAvailable *int `json:"bikes_available,omitempty"`
	DocksAvailable *int `json:"docks_available,omitempty"`

	// バスのみ
	Line        string `json:"line,omitempty"`
	Destination string `json:"destination,omitempty"`

	ExactDistanceKm float64 `json:"-"` // 丸める前の距離
}

// NewAlternativeSpot は検索地点からの距離を付けてスポットを作成する
func NewAlternativeSpot(kind FallbackKind, name string, at, from Coordinate) AlternativeSpot {
	km := FlatEarthDistanceKm(from, at)
	return AlternativeSpot{
		Kind:            kind,
		Name:            name,
		Lat:             at.Lat,
		Lon:             at.Lon,
		DistanceMeters:  int(math.Round(km * 1000)),
		ExactDistanceKm: km,
	}
}

// Coordinate スポットの座標
func (s AlternativeSpot) Coordinate() Coordinate {
	return Coordinate{Lat: s.Lat, Lon: s.Lon}
}

// AlternativeRoutePlan バスでの代替ルート案
type AlternativeRoutePlan struct {
	AlertIndex        int    `json:"alert_idx"`
	StartStation      string `json:"start_station"`
	EndStation        string `json:"end_station"`
	OriginalTime      string `json:"original_time"`
	StartBusStop      string `json:"start_bus_stop"`
	StartBusLine      string `json:"start_bus_line"`
	StartBusDest      string `json:"start_bus_dest"`
	EndBusStop        string `json:"end_bus_stop"`
	EndBusLine        string `json:"end_bus_line"`
	EndBusDest        string `json:"end_bus_dest"`
	ArrivalTime       string `json:"arrival_time"`
	TravelTimeMinutes int    `json:"travel_time"`
}

// AdvisoryResult 遅延チェックの結果
type AdvisoryResult struct {
	RequestID      string                `json:"request_id"`
	Timeline       []EvaluatedLeg        `json:"timeline"`
	HasTrouble     bool                  `json:"has_trouble"`
	StartSpots     []AlternativeSpot     `json:"rent_ports"`
	EndSpots       []AlternativeSpot     `json:"return_ports"`
	StartPoint     Coordinate            `json:"start_point"`
	EndPoint       *Coordinate           `json:"end_point"`
	BusAlternative *AlternativeRoutePlan `json:"bus_alternative"`
}

// FirstAlertIndex 最初に遅延判定された区間の位置（なければ -1）
func (r *AdvisoryResult) FirstAlertIndex() int {
	for i, leg := range r.Timeline {
		if leg.Alert {
			return i
		}
	}
	return -1
}

// Summary ログ出力用の要約
func (r *AdvisoryResult) Summary() string {
	return fmt.Sprintf("区間:%d 遅延:%v 出発側:%d件 到着側:%d件 代替案:%v",
		len(r.Timeline), r.HasTrouble, len(r.StartSpots), len(r.EndSpots), r.BusAlternative != nil)
}
