package model

// TargetLocation リクエストで渡される目的地座標
type TargetLocation struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// LegRequest 区間1件分のリクエスト
type LegRequest struct {
	LineID           string          `json:"line_id"`
	LineName         string          `json:"line_name"`
	StartStationID   string          `json:"start_st_id"`
	StartStationName string          `json:"start_st_name"`
	EndStationID     string          `json:"end_st_id"`
	EndStationName   string          `json:"end_st_name"`
	Time             string          `json:"time"`
	ForceDelay       bool            `json:"force_delay"`
	BikeTarget       *TargetLocation `json:"bike_target"`
}

// ToLeg 区間モデルに変換する
func (r LegRequest) ToLeg() Leg {
	leg := Leg{
		LineID:           r.LineID,
		LineName:         r.LineName,
		StartStationID:   r.StartStationID,
		StartStationName: r.StartStationName,
		EndStationID:     r.EndStationID,
		EndStationName:   r.EndStationName,
		DepartureTime:    r.Time,
		ForceDisruption:  r.ForceDelay,
	}
	if r.BikeTarget != nil && r.BikeTarget.Lat != nil && r.BikeTarget.Lon != nil {
		leg.Destination = NewCoordinate(*r.BikeTarget.Lat, *r.BikeTarget.Lon)
	}
	return leg
}

// AdvisoryRequest 遅延チェック1回分の入力
type AdvisoryRequest struct {
	Legs         []LegRequest
	Origin       *Coordinate
	FallbackKind FallbackKind
}
