package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RailEscape-App/internal/domain/model"
)

func TestSearchBusStops(t *testing.T) {
	t.Run("viewboxと国コードを付けて検索", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "bus stop", q.Get("q"))
			box := strings.Split(q.Get("viewbox"), ",")
			if assert.Len(t, box, 4) {
				for i, want := range []float64{139.695, 35.685, 139.705, 35.695} {
					got, err := strconv.ParseFloat(box[i], 64)
					assert.NoError(t, err)
					assert.InDelta(t, want, got, 1e-9)
				}
			}
			assert.Equal(t, "1", q.Get("bounded"))
			assert.Equal(t, "jp", q.Get("countrycodes"))
			assert.Equal(t, "10", q.Get("limit"))
			assert.Equal(t, "RailEscapeApp/1.0", r.Header.Get("User-Agent"))
			w.Write([]byte(`[{"lat":"35.6901","lon":"139.7003","display_name":"新宿駅西口, 西新宿, 新宿区, 東京都, 日本"}]`))
		}))
		defer srv.Close()

		provider := NewNominatimProvider(srv.URL, "RailEscapeApp/1.0", "jp", srv.Client(), time.Second)
		bound := model.Coordinate{Lat: 35.69, Lon: 139.70}.SearchBound(0.005)
		stops, err := provider.SearchBusStops(context.Background(), bound)
		require.NoError(t, err)
		require.Len(t, stops, 1)
		assert.Equal(t, "新宿駅西口, 西新宿, 新宿区, 東京都, 日本", stops[0].DisplayName)
		assert.InDelta(t, 35.6901, stops[0].Location.Lat, 1e-9)
	})

	t.Run("座標が数値でなければエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat":"north","lon":"139.7","display_name":"x"}]`))
		}))
		defer srv.Close()

		provider := NewNominatimProvider(srv.URL, "ua", "jp", srv.Client(), time.Second)
		_, err := provider.SearchBusStops(context.Background(), model.Coordinate{Lat: 35, Lon: 139}.SearchBound(0.005))
		assert.Error(t, err)
	})
}

func TestSearchPlace(t *testing.T) {
	t.Run("最上位の1件を返す", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "東京タワー", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			w.Write([]byte(`[{"lat":"35.6586","lon":"139.7454","display_name":"東京タワー, 芝公園, 港区, 東京都, 日本"}]`))
		}))
		defer srv.Close()

		provider := NewNominatimProvider(srv.URL, "ua", "jp", srv.Client(), time.Second)
		place, err := provider.SearchPlace(context.Background(), "東京タワー")
		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "東京タワー", place.Name)
		assert.Equal(t, 35.6586, place.Lat)
	})

	t.Run("見つからなければnil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		provider := NewNominatimProvider(srv.URL, "ua", "jp", srv.Client(), time.Second)
		place, err := provider.SearchPlace(context.Background(), "存在しない場所")
		require.NoError(t, err)
		assert.Nil(t, place)
	})
}
