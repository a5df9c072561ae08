package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"RailEscape-App/internal/domain/model"
)

const source = "nominatim"

// busStopSearchLimit 1回の検索で取得するバス停の最大件数
const busStopSearchLimit = 10

// NominatimProvider はOpenStreetMap Nominatimを使用した地名・バス停検索の実装
type NominatimProvider struct {
	baseURL     string
	userAgent   string
	countryCode string
	httpClient  *http.Client
	timeout     time.Duration
}

// NewNominatimProvider は新しいプロバイダを生成する
func NewNominatimProvider(baseURL, userAgent, countryCode string, httpClient *http.Client, timeout time.Duration) *NominatimProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &NominatimProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		countryCode: countryCode,
		httpClient:  httpClient,
		timeout:     timeout,
	}
}

// SearchBusStops は境界ボックス内のバス停を検索する
func (n *NominatimProvider) SearchBusStops(ctx context.Context, bound orb.Bound) ([]model.BusStopCandidate, error) {
	params := url.Values{}
	params.Set("q", "bus stop")
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(busStopSearchLimit))
	params.Set("viewbox", viewbox(bound))
	params.Set("bounded", "1")
	params.Set("countrycodes", n.countryCode)

	places, err := n.search(ctx, params)
	if err != nil {
		return nil, model.NewFetchError(source, "bus stop search", err)
	}

	stops := make([]model.BusStopCandidate, 0, len(places))
	for _, p := range places {
		loc, err := p.coordinate()
		if err != nil {
			return nil, model.NewFetchError(source, "bus stop search", err)
		}
		stops = append(stops, model.BusStopCandidate{
			DisplayName: p.DisplayName,
			Location:    loc,
		})
	}
	return stops, nil
}

// SearchPlace は自由入力の地名を検索し、最上位の1件を返す
func (n *NominatimProvider) SearchPlace(ctx context.Context, query string) (*model.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("countrycodes", n.countryCode)
	params.Set("limit", "1")

	places, err := n.search(ctx, params)
	if err != nil {
		return nil, model.NewFetchError(source, "place search", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	top := places[0]
	loc, err := top.coordinate()
	if err != nil {
		return nil, model.NewFetchError(source, "place search", err)
	}
	return &model.Place{
		Name: model.ShortPlaceName(top.DisplayName),
		Lat:  loc.Lat,
		Lon:  loc.Lon,
	}, nil
}

func (n *NominatimProvider) search(ctx context.Context, params url.Values) ([]nominatimPlace, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return places, nil
}

// viewbox Nominatimのviewbox形式（左,下,右,上 = 最小経度,最小緯度,最大経度,最大緯度）
func viewbox(b orb.Bound) string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatDegrees(b.Min.Lon()), formatDegrees(b.Min.Lat()),
		formatDegrees(b.Max.Lon()), formatDegrees(b.Max.Lat()))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// --- Nominatim APIのレスポンスをパースするための構造体 ---

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p nominatimPlace) coordinate() (model.Coordinate, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("緯度のパースに失敗: %w", err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("経度のパースに失敗: %w", err)
	}
	return model.Coordinate{Lat: lat, Lon: lon}, nil
}
