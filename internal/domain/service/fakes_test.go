package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"RailEscape-App/internal/domain/model"
)

var errUpstream = errors.New("upstream unavailable")

// fakeSignals はメモリ上のマップで運行情報・遅延・駅座標を返す
type fakeSignals struct {
	mu sync.Mutex

	statuses    map[string]string
	delays      map[string][]int
	stations    map[string]model.Coordinate
	statusErr   error
	delayErr    error
	geoErr      error
	statusCalls map[string]int
	geoCalls    map[string]int
}

func newFakeSignals() *fakeSignals {
	return &fakeSignals{
		statuses:    map[string]string{},
		delays:      map[string][]int{},
		stations:    map[string]model.Coordinate{},
		statusCalls: map[string]int{},
		geoCalls:    map[string]int{},
	}
}

func (f *fakeSignals) FetchLineStatusText(ctx context.Context, lineID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls[lineID]++
	if f.statusErr != nil {
		return "", model.NewFetchError("odpt", "TrainInformation", f.statusErr)
	}
	if text, ok := f.statuses[lineID]; ok {
		return text, nil
	}
	return model.StatusNormal, nil
}

func (f *fakeSignals) FetchActiveTrainDelays(ctx context.Context, lineID string) ([]int, error) {
	if f.delayErr != nil {
		return nil, model.NewFetchError("odpt", "Train", f.delayErr)
	}
	return f.delays[lineID], nil
}

func (f *fakeSignals) ResolveStationCoordinate(ctx context.Context, stationID string) (*model.Coordinate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.geoCalls[stationID]++
	if f.geoErr != nil {
		return nil, model.NewFetchError("odpt", "Station", f.geoErr)
	}
	c, ok := f.stations[stationID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeSignals) service() *TransitSignalService {
	return NewTransitSignalService(f, f, f)
}

// fakeLocator は検索地点そのものに1件のスポットを返す
type fakeLocator struct {
	mu    sync.Mutex
	kind  model.FallbackKind
	calls []model.Coordinate
}

func (l *fakeLocator) Kind() model.FallbackKind {
	return l.kind
}

func (l *fakeLocator) Locate(ctx context.Context, at *model.Coordinate) []model.AlternativeSpot {
	if at == nil {
		return []model.AlternativeSpot{}
	}
	l.mu.Lock()
	l.calls = append(l.calls, *at)
	l.mu.Unlock()

	spot := model.NewAlternativeSpot(l.kind, spotName(*at), *at, *at)
	if l.kind == model.FallbackBus {
		spot.Line = "都営バス"
		spot.Destination = "新宿駅"
	}
	return []model.AlternativeSpot{spot}
}

func (l *fakeLocator) calledAt(c model.Coordinate) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, call := range l.calls {
		if call == c {
			return true
		}
	}
	return false
}

func spotName(c model.Coordinate) string {
	return fmt.Sprintf("spot@%.2f,%.2f", c.Lat, c.Lon)
}
