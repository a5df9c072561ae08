package service

import (
	"sort"
	"strings"
	"time"

	"RailEscape-App/internal/domain/model"
)

const (
	CalendarWeekday         = "Weekday"
	CalendarSaturdayHoliday = "SaturdayHoliday"

	// TimetableWindowMinutes 指定時刻の前後何分の発車を返すか
	TimetableWindowMinutes = 30
	// lenientCalendarTables 時刻表がこの件数以下ならカレンダーを問わない
	lenientCalendarTables = 3

	unknownDestination = "Unknown"
)

// DefaultCalendar 土日は "SaturdayHoliday"、それ以外は "Weekday"
func DefaultCalendar(now time.Time) string {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return CalendarSaturdayHoliday
	default:
		return CalendarWeekday
	}
}

// ShortStationID "odpt.Station:JR-East.Yamanote.Shinjuku" → "odpt.Station:JR-East.Shinjuku"
// 短縮できない形式なら空文字
func ShortStationID(stationID string) string {
	prefix, body, ok := strings.Cut(stationID, ":")
	if !ok || strings.Contains(body, ":") {
		return ""
	}
	parts := strings.Split(body, ".")
	if len(parts) < 3 {
		return ""
	}
	return prefix + ":" + parts[0] + "." + parts[len(parts)-1]
}

// FilterTimetable は時刻表から指定時刻の前後30分の発車を抜き出し、重複を除いて時刻順に並べる
func FilterTimetable(tables []model.StationTimetable, lineID, calendar string, target model.ClockTime) []model.TimetableEntry {
	entries := []model.TimetableEntry{}
	seen := map[string]bool{}

	for _, tt := range tables {
		// JR東日本は路線をまたいで時刻表を共有している
		if lineID != "" && tt.Railway != "" && tt.Railway != lineID && !strings.Contains(lineID, "JR-East") {
			continue
		}
		if !calendarMatches(calendar, tt.Calendar) && len(tables) > lenientCalendarTables {
			continue
		}

		for _, dep := range tt.Departures {
			if dep.DepartureTime == "" {
				continue
			}
			t, err := model.ParseClockTime(dep.DepartureTime)
			if err != nil {
				continue
			}
			if int(t) < int(target)-TimetableWindowMinutes || int(t) > int(target)+TimetableWindowMinutes {
				continue
			}

			entry := model.TimetableEntry{
				Time:        dep.DepartureTime,
				Destination: unknownDestination,
				TrainType:   lastSegment(dep.TrainType),
			}
			if len(dep.DestinationStation) > 0 {
				entry.Destination = lastSegment(dep.DestinationStation[0])
			}

			key := entry.Time + "-" + entry.Destination
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return entries
}

func calendarMatches(want, calendarID string) bool {
	if want == CalendarWeekday {
		return strings.Contains(calendarID, "Weekday")
	}
	return strings.Contains(calendarID, "Saturday") || strings.Contains(calendarID, "Holiday")
}

func lastSegment(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[i+1:]
	}
	return id
}
