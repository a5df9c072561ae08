package model

import (
	"math"

	"github.com/paulmach/orb"
)

// FlatEarthKmPerDegree は緯度経度1度あたりの距離(km)の近似値
const FlatEarthKmPerDegree = 111.0

// Coordinate 緯度経度を表す型
// 上流で座標を解決できなかった場合は *Coordinate を nil として扱う（0,0 にはしない）
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate は新しいCoordinateを作成する
func NewCoordinate(lat, lon float64) *Coordinate {
	return &Coordinate{Lat: lat, Lon: lon}
}

// ToPoint orb.Point（[経度, 緯度]）に変換
func (c Coordinate) ToPoint() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// IsUsable は目的地の上書き指定として使える座標かどうか
// 緯度・経度のどちらかが0、または範囲外の場合は使えない
func (c *Coordinate) IsUsable() bool {
	if c == nil || c.Lat == 0 || c.Lon == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// SearchBound 座標を中心に padDegrees だけ広げた境界ボックスを返す
func (c Coordinate) SearchBound(padDegrees float64) orb.Bound {
	p := c.ToPoint()
	return orb.Bound{Min: p, Max: p}.Pad(padDegrees)
}

// FlatEarthDistanceKm は2地点間の平面近似距離(km)を計算する
// sqrt(dLat² + dLon²) * 111 の正距円筒近似で、測地線距離ではない
func FlatEarthDistanceKm(a, b Coordinate) float64 {
	pa, pb := a.ToPoint(), b.ToPoint()
	dLat := pb.Lat() - pa.Lat()
	dLon := pb.Lon() - pa.Lon()
	return math.Sqrt(dLat*dLat+dLon*dLon) * FlatEarthKmPerDegree
}

// FlatEarthDistanceMeters は平面近似距離をメートルで返す
func FlatEarthDistanceMeters(a, b Coordinate) float64 {
	return FlatEarthDistanceKm(a, b) * 1000
}
