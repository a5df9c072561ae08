package gbfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBikePorts(t *testing.T) {
	t.Run("情報と在庫をstation_idで結合", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "key", r.URL.Query().Get("acl:consumerKey"))
			switch r.URL.Path {
			case "/docomo-cycle-tokyo/station_information.json":
				w.Write([]byte(`{"data":{"stations":[
					{"station_id":"00010001","name":"A1-01.新宿駅西口","lat":35.6905,"lon":139.6990},
					{"station_id":"00010002","name":"A1-02.都庁前","lat":35.6895,"lon":139.6920}
				]}}`))
			case "/docomo-cycle-tokyo/station_status.json":
				w.Write([]byte(`{"data":{"stations":[
					{"station_id":"00010001","num_bikes_available":4,"num_docks_available":11}
				]}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "docomo-cycle-tokyo", "key", srv.Client(), time.Second)
		ports, err := client.FetchBikePorts(context.Background())
		require.NoError(t, err)
		require.Len(t, ports, 1)
		assert.Equal(t, "A1-01.新宿駅西口", ports[0].Name)
		assert.Equal(t, 4, ports[0].BikesAvailable)
		assert.Equal(t, 11, ports[0].DocksAvailable)
		assert.Equal(t, 35.6905, ports[0].Location.Lat)
	})

	t.Run("片方の取得失敗はエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sys/station_status.json" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"data":{"stations":[]}}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "sys", "", srv.Client(), time.Second)
		_, err := client.FetchBikePorts(context.Background())
		assert.Error(t, err)
	})
}
