package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"RailEscape-App/internal/domain/model"
)

const source = "gtfsrt"

// TripUpdateDelaySource GTFS-RT TripUpdatesフィードから路線の列車遅延を取得する
// ODPTの odpt:Train の代わりに使える
type TripUpdateDelaySource struct {
	feedURL    string
	httpClient *http.Client
	timeout    time.Duration
	routeIDOf  func(lineID string) string
}

// NewTripUpdateDelaySource は新しい遅延取得元を作成する
// routeIDOf は路線ID（odpt.Railway:...）からフィードの route_id への変換。nilなら路線IDの末尾を使う
func NewTripUpdateDelaySource(feedURL string, httpClient *http.Client, timeout time.Duration, routeIDOf func(string) string) *TripUpdateDelaySource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if routeIDOf == nil {
		routeIDOf = RouteIDFromLineID
	}
	return &TripUpdateDelaySource{
		feedURL:    feedURL,
		httpClient: httpClient,
		timeout:    timeout,
		routeIDOf:  routeIDOf,
	}
}

// RouteIDFromLineID "odpt.Railway:JR-East.Yamanote" → "JR-East.Yamanote"
func RouteIDFromLineID(lineID string) string {
	if _, after, ok := strings.Cut(lineID, ":"); ok {
		return after
	}
	return lineID
}

// FetchActiveTrainDelays 対象路線のTripUpdateごとに最大の遅延秒数を返す
func (s *TripUpdateDelaySource) FetchActiveTrainDelays(ctx context.Context, lineID string) ([]int, error) {
	feed, err := s.fetchFeed(ctx)
	if err != nil {
		return nil, model.NewFetchError(source, "TripUpdates", err)
	}

	routeID := s.routeIDOf(lineID)
	delays := make([]int, 0)
	for _, entity := range feed.GetEntity() {
		tu := entity.GetTripUpdate()
		if tu == nil || tu.GetTrip().GetRouteId() != routeID {
			continue
		}
		if tu.GetTrip().GetScheduleRelationship() == gtfs.TripDescriptor_CANCELED {
			continue
		}
		delays = append(delays, tripDelaySeconds(tu))
	}
	return delays, nil
}

// tripDelaySeconds TripUpdate全体の遅延、なければ停車駅ごとの遅延の最大値
func tripDelaySeconds(tu *gtfs.TripUpdate) int {
	if tu.Delay != nil {
		return int(tu.GetDelay())
	}
	maxDelay := 0
	for _, stu := range tu.GetStopTimeUpdate() {
		if d := int(stu.GetArrival().GetDelay()); d > maxDelay {
			maxDelay = d
		}
		if d := int(stu.GetDeparture().GetDelay()); d > maxDelay {
			maxDelay = d
		}
	}
	return maxDelay
}

// fetchFeed はTripUpdatesフィードを取得してprotobufをデコードする
func (s *TripUpdateDelaySource) fetchFeed(ctx context.Context) (*gtfs.FeedMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Accept", "application/x-protobuf")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("フィードの取得に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("フィードからエラーステータスが返されました: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("フィードの読み込みに失敗: %w", err)
	}

	var feed gtfs.FeedMessage
	if err := proto.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("フィードのデコードに失敗: %w", err)
	}
	return &feed, nil
}
