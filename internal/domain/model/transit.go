package model

import "strings"

// Line 路線カタログの1件
type Line struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Station 路線上の駅
type Station struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// TimetableEntry 駅時刻表の1本
type TimetableEntry struct {
	Time        string `json:"time"`
	Destination string `json:"dest"`
	TrainType   string `json:"type"`
}

// TimetableDeparture 時刻表APIから読み取った発車情報（絞り込み前）
type TimetableDeparture struct {
	DepartureTime      string
	DestinationStation []string
	TrainType          string
}

// StationTimetable 時刻表APIの1件（カレンダー単位）
type StationTimetable struct {
	Railway    string
	Calendar   string
	Departures []TimetableDeparture
}

// Place 地名検索の結果
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// BikePort GBFSのステーション情報と在庫情報を結合したもの
type BikePort struct {
	StationID      string
	Name           string
	Location       Coordinate
	BikesAvailable int
	DocksAvailable int
}

// BusStopCandidate 地名検索で見つかったバス停
type BusStopCandidate struct {
	DisplayName string
	Location    Coordinate
}

// ShortPlaceName 表示名の最初のカンマ区切り部分（例: "新宿駅西口, 西新宿, 新宿区, ..." → "新宿駅西口"）
func ShortPlaceName(displayName string) string {
	name, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(name)
}
