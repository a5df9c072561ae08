package service

import (
	"strings"

	"RailEscape-App/internal/domain/model"
)

// LegSignal 1区間分の取得済みリアルタイム情報
type LegSignal struct {
	StatusText string
	Congestion model.CongestionReading
	StartGeo   *model.Coordinate
}

// ForcedSignal はテスト用の強制遅延を適用した値を返す（外部APIの結果は使わない）
func ForcedSignal(startGeo *model.Coordinate) LegSignal {
	return LegSignal{
		StatusText: model.StatusForcedTest,
		Congestion: model.CongestionReading{
			Level:      model.CongestionSevere,
			Message:    model.MsgForcedTest,
			TrainCount: model.ForcedTrainCount,
			MaxDelay:   model.ForcedMaxDelay,
		},
		StartGeo: startGeo,
	}
}

// ContainsDisruptionKeyword は運行情報テキストに遅延を示す語が含まれるか
func ContainsDisruptionKeyword(statusText string) bool {
	for _, w := range model.DisruptionKeywords {
		if strings.Contains(statusText, w) {
			return true
		}
	}
	return false
}

// IsAlert 遅延を示す語を含むか、混雑度が2以上なら遅延とみなす
func IsAlert(statusText string, reading model.CongestionReading) bool {
	return ContainsDisruptionKeyword(statusText) || reading.Level >= model.CongestionCrowded
}

// EvaluateLeg は区間にリアルタイム情報と遅延判定を付与する
// 強制遅延フラグが立っている場合は取得結果に関係なく激混みとして扱う
func EvaluateLeg(leg model.Leg, signal LegSignal) model.EvaluatedLeg {
	if leg.ForceDisruption {
		signal = ForcedSignal(signal.StartGeo)
	}

	return model.EvaluatedLeg{
		LineName:     leg.LineName,
		StartStation: leg.StartStationName,
		EndStation:   leg.EndStationName,
		StartGeo:     signal.StartGeo,
		Time:         leg.DepartureTime,
		Status:       signal.StatusText,
		Alert:        IsAlert(signal.StatusText, signal.Congestion),
		Congestion:   signal.Congestion,
		Leg:          leg,
	}
}
