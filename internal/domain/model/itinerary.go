package model

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Leg 乗換案内の1区間（1路線分）
type Leg struct {
	LineID           string
	LineName         string
	StartStationID   string
	StartStationName string
	EndStationID     string
	EndStationName   string
	DepartureTime    string      // "HH:MM"
	Destination      *Coordinate // 最終目的地の上書き（駅ではなく実際の目的地）
	ForceDisruption  bool        // テスト用の強制遅延フラグ
}

// Itinerary 乗車順に並んだ区間の列
type Itinerary []Leg

// ClockTime 0時からの経過分で表す時刻
type ClockTime int

// ParseClockTime "HH:MM" 形式の文字列を ClockTime に変換する
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("時刻の形式が正しくありません: %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("時の値が正しくありません: %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("分の値が正しくありません: %q: %w", s, err)
	}
	if h < 0 || m < 0 || m >= 60 {
		return 0, fmt.Errorf("時刻の範囲外です: %q", s)
	}
	return ClockTime(h*60 + m), nil
}

// AddMinutes は分を加算し、24時間で折り返す
func (t ClockTime) AddMinutes(minutes int) ClockTime {
	v := (int(t) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return ClockTime(v)
}

// String "HH:MM" 形式（ゼロ埋め24時間表記）
func (t ClockTime) String() string {
	v := int(t) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", v/60, v%60)
}
