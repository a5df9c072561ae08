package odpt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"RailEscape-App/internal/domain/model"
)

const source = "odpt"

// Client 公共交通オープンデータ(ODPT) APIのクライアント
// 運行情報・列車位置・駅情報・時刻表を取得する
type Client struct {
	baseURL       string
	consumerKey   string
	httpClient    *http.Client
	statusTimeout time.Duration
	trainTimeout  time.Duration
	lookupTimeout time.Duration
}

// Options タイムアウト設定
type Options struct {
	StatusTimeout time.Duration
	TrainTimeout  time.Duration
	LookupTimeout time.Duration
}

// NewClient は新しいODPTクライアントを作成する
func NewClient(baseURL, consumerKey string, httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		consumerKey:   consumerKey,
		httpClient:    httpClient,
		statusTimeout: orDefault(opts.StatusTimeout, 2*time.Second),
		trainTimeout:  orDefault(opts.TrainTimeout, 3*time.Second),
		lookupTimeout: orDefault(opts.LookupTimeout, 3*time.Second),
	}
}

// FetchLineStatusText 路線の運行情報テキスト（日本語）を取得する
func (c *Client) FetchLineStatusText(ctx context.Context, lineID string) (string, error) {
	params := url.Values{}
	params.Set("odpt:railway", lineID)

	var infos []trainInformation
	if err := c.getJSON(ctx, c.statusTimeout, "odpt:TrainInformation", params, &infos); err != nil {
		return "", model.NewFetchError(source, "TrainInformation", err)
	}
	if len(infos) == 0 {
		return model.StatusNormal, nil
	}
	if text, ok := infos[0].Text["ja"]; ok && text != "" {
		return text, nil
	}
	return model.StatusNormal, nil
}

// FetchActiveTrainDelays 路線上で稼働中の列車ごとの遅延秒数を取得する
func (c *Client) FetchActiveTrainDelays(ctx context.Context, lineID string) ([]int, error) {
	params := url.Values{}
	params.Set("odpt:railway", lineID)

	var trains []train
	if err := c.getJSON(ctx, c.trainTimeout, "odpt:Train", params, &trains); err != nil {
		return nil, model.NewFetchError(source, "Train", err)
	}

	delays := make([]int, 0, len(trains))
	for _, t := range trains {
		delays = append(delays, t.Delay)
	}
	return delays, nil
}

// ResolveStationCoordinate 駅IDから座標を取得する
func (c *Client) ResolveStationCoordinate(ctx context.Context, stationID string) (*model.Coordinate, error) {
	if stationID == "" {
		return nil, nil
	}
	params := url.Values{}
	params.Set("owl:sameAs", stationID)

	var stations []station
	if err := c.getJSON(ctx, c.lookupTimeout, "odpt:Station", params, &stations); err != nil {
		return nil, model.NewFetchError(source, "Station", err)
	}
	if len(stations) == 0 || stations[0].Lat == nil || stations[0].Lon == nil {
		return nil, nil
	}
	return model.NewCoordinate(*stations[0].Lat, *stations[0].Lon), nil
}

// FetchStationsInOrder 路線の駅を駅順に並べて返す
// 駅順に含まれない駅は末尾に付け足す
func (c *Client) FetchStationsInOrder(ctx context.Context, lineID string) ([]model.Station, error) {
	railwayParams := url.Values{}
	railwayParams.Set("owl:sameAs", lineID)
	var railways []railway
	if err := c.getJSON(ctx, c.lookupTimeout, "odpt:Railway", railwayParams, &railways); err != nil {
		return nil, model.NewFetchError(source, "Railway", err)
	}

	stationParams := url.Values{}
	stationParams.Set("odpt:railway", lineID)
	var stations []station
	if err := c.getJSON(ctx, c.lookupTimeout, "odpt:Station", stationParams, &stations); err != nil {
		return nil, model.NewFetchError(source, "Station", err)
	}

	if len(railways) == 0 || len(stations) == 0 {
		return []model.Station{}, nil
	}
	return orderStations(railways[0].StationOrder, stations), nil
}

func orderStations(order []stationOrder, stations []station) []model.Station {
	byID := make(map[string]model.Station, len(stations))
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		if _, dup := byID[s.SameAs]; !dup {
			ids = append(ids, s.SameAs)
		}
		byID[s.SameAs] = model.Station{
			ID:   s.SameAs,
			Name: s.Title["ja"],
			Lat:  s.Lat,
			Lon:  s.Lon,
		}
	}

	ordered := make([]model.Station, 0, len(byID))
	used := make(map[string]bool, len(byID))
	for _, item := range order {
		if st, ok := byID[item.Station]; ok && !used[item.Station] {
			ordered = append(ordered, st)
			used[item.Station] = true
		}
	}
	for _, id := range ids {
		if !used[id] {
			ordered = append(ordered, byID[id])
		}
	}
	return ordered
}

// FetchStationTimetables 駅時刻表を取得する（lineIDが空なら路線で絞り込まない）
func (c *Client) FetchStationTimetables(ctx context.Context, stationID, lineID string) ([]model.StationTimetable, error) {
	params := url.Values{}
	params.Set("odpt:station", stationID)
	if lineID != "" {
		params.Set("odpt:railway", lineID)
	}

	var tables []stationTimetable
	if err := c.getJSON(ctx, c.lookupTimeout, "odpt:StationTimetable", params, &tables); err != nil {
		return nil, model.NewFetchError(source, "StationTimetable", err)
	}

	result := make([]model.StationTimetable, 0, len(tables))
	for _, tt := range tables {
		deps := make([]model.TimetableDeparture, 0, len(tt.Objects))
		for _, obj := range tt.Objects {
			deps = append(deps, model.TimetableDeparture{
				DepartureTime:      obj.DepartureTime,
				DestinationStation: obj.DestinationStation,
				TrainType:          obj.TrainType,
			})
		}
		result = append(result, model.StationTimetable{
			Railway:    tt.Railway,
			Calendar:   tt.Calendar,
			Departures: deps,
		})
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, timeout time.Duration, resource string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.consumerKey != "" {
		params.Set("acl:consumerKey", c.consumerKey)
	}
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// --- ODPT APIのレスポンスをパースするための構造体 ---

type trainInformation struct {
	Text map[string]string `json:"odpt:trainInformationText"`
}

type train struct {
	Delay int `json:"odpt:delay"` // seconds
}

type station struct {
	SameAs string            `json:"owl:sameAs"`
	Title  map[string]string `json:"odpt:stationTitle"`
	Lat    *float64          `json:"geo:lat"`
	Lon    *float64          `json:"geo:long"`
}

type railway struct {
	StationOrder []stationOrder `json:"odpt:stationOrder"`
}

type stationOrder struct {
	Station string `json:"odpt:station"`
}

type stationTimetable struct {
	Railway  string                  `json:"odpt:railway"`
	Calendar string                  `json:"odpt:calendar"`
	Objects  []stationTimetableObject `json:"odpt:stationTimetableObject"`
}

type stationTimetableObject struct {
	DepartureTime      string   `json:"odpt:departureTime"`
	DestinationStation []string `json:"odpt:destinationStation"`
	TrainType          string   `json:"odpt:trainType"`
}
