package gbfs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"RailEscape-App/internal/domain/model"
)

const source = "gbfs"

// Client GBFSフィード（シェアサイクル）のクライアント
type Client struct {
	baseURL     string
	systemID    string
	consumerKey string
	httpClient  *http.Client
	timeout     time.Duration
}

// NewClient は新しいGBFSクライアントを作成する
func NewClient(baseURL, systemID, consumerKey string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		systemID:    systemID,
		consumerKey: consumerKey,
		httpClient:  httpClient,
		timeout:     timeout,
	}
}

// FetchBikePorts station_information と station_status を並行取得し、station_idで結合する
// 在庫情報のないステーションは除外する
func (c *Client) FetchBikePorts(ctx context.Context) ([]model.BikePort, error) {
	var info stationInformationFeed
	var status stationStatusFeed

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "station_information.json", &info)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "station_status.json", &status)
	})
	if err := g.Wait(); err != nil {
		return nil, model.NewFetchError(source, "stations", err)
	}

	statusByID := make(map[string]stationStatus, len(status.Data.Stations))
	for _, s := range status.Data.Stations {
		statusByID[s.StationID] = s
	}

	ports := make([]model.BikePort, 0, len(info.Data.Stations))
	for _, s := range info.Data.Stations {
		st, ok := statusByID[s.StationID]
		if !ok {
			continue
		}
		ports = append(ports, model.BikePort{
			StationID:      s.StationID,
			Name:           s.Name,
			Location:       model.Coordinate{Lat: s.Lat, Lon: s.Lon},
			BikesAvailable: st.NumBikesAvailable,
			DocksAvailable: st.NumDocksAvailable,
		})
	}
	return ports, nil
}

func (c *Client) getJSON(ctx context.Context, file string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, c.systemID, file)
	if c.consumerKey != "" {
		params := url.Values{}
		params.Set("acl:consumerKey", c.consumerKey)
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%sの取得に失敗: %w", file, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%sからエラーステータスが返されました: %s", file, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%sのパースに失敗: %w", file, err)
	}
	return nil
}

// --- GBFSフィードの構造体 ---

type stationInformationFeed struct {
	Data struct {
		Stations []stationInformation `json:"stations"`
	} `json:"data"`
}

type stationInformation struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

type stationStatusFeed struct {
	Data struct {
		Stations []stationStatus `json:"stations"`
	} `json:"data"`
}

type stationStatus struct {
	StationID         string `json:"station_id"`
	NumBikesAvailable int    `json:"num_bikes_available"`
	NumDocksAvailable int    `json:"num_docks_available"`
}
