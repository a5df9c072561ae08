package service

import (
	"fmt"
	"math"

	"RailEscape-App/internal/domain/model"
)

const (
	// SevereDelayMinutes この遅延(分)以上で激混み
	SevereDelayMinutes = 10
	// CrowdedDelayMinutes この遅延(分)以上で混雑
	CrowdedDelayMinutes = 3
)

// ClassifyCongestion は稼働中の列車の遅延秒数から混雑度を判定する
func ClassifyCongestion(delaySeconds []int) model.CongestionReading {
	if len(delaySeconds) == 0 {
		return model.NoOperationReading()
	}

	maxSeconds := delaySeconds[0]
	for _, d := range delaySeconds[1:] {
		if d > maxSeconds {
			maxSeconds = d
		}
	}
	maxMinutes := int(math.Ceil(float64(maxSeconds) / 60))

	reading := model.CongestionReading{TrainCount: len(delaySeconds)}
	switch {
	case maxMinutes >= SevereDelayMinutes:
		reading.Level = model.CongestionSevere
		reading.Message = fmt.Sprintf(model.MsgSevereFormat, maxMinutes)
		reading.MaxDelay = maxMinutes
	case maxMinutes >= CrowdedDelayMinutes:
		reading.Level = model.CongestionCrowded
		reading.Message = fmt.Sprintf(model.MsgCrowdedFormat, maxMinutes)
		reading.MaxDelay = maxMinutes
	default:
		// スムーズな場合は遅延を報告しない
		reading.Level = model.CongestionSmooth
		reading.Message = model.MsgSmooth
	}
	return reading
}
