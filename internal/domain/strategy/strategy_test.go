package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RailEscape-App/internal/domain/model"
)

type fakeBikePortRepo struct {
	ports []model.BikePort
	err   error
	calls int
}

func (f *fakeBikePortRepo) FetchBikePorts(ctx context.Context) ([]model.BikePort, error) {
	f.calls++
	return f.ports, f.err
}

type fakeBusStopRepo struct {
	stops     []model.BusStopCandidate
	err       error
	calls     int
	lastBound orb.Bound
}

func (f *fakeBusStopRepo) SearchBusStops(ctx context.Context, bound orb.Bound) ([]model.BusStopCandidate, error) {
	f.calls++
	f.lastBound = bound
	return f.stops, f.err
}

var shinjuku = model.Coordinate{Lat: 35.690921, Lon: 139.700258}

// northOf は shinjuku から北へ meters だけ離れた座標（平面近似）
func northOf(meters float64) model.Coordinate {
	return model.Coordinate{Lat: shinjuku.Lat + meters/1000/model.FlatEarthKmPerDegree, Lon: shinjuku.Lon}
}

func TestBikeShareStrategy_Locate(t *testing.T) {
	t.Run("500m未満を近い順に", func(t *testing.T) {
		repo := &fakeBikePortRepo{ports: []model.BikePort{
			{StationID: "3", Name: "遠いポート", Location: northOf(900), BikesAvailable: 1, DocksAvailable: 1},
			{StationID: "2", Name: "中くらい", Location: northOf(300), BikesAvailable: 0, DocksAvailable: 12},
			{StationID: "1", Name: "近いポート", Location: northOf(50), BikesAvailable: 5, DocksAvailable: 3},
		}}

		spots := NewBikeShareStrategy(repo).Locate(context.Background(), &shinjuku)
		require.Len(t, spots, 2)
		assert.Equal(t, "近いポート", spots[0].Name)
		assert.Equal(t, 50, spots[0].DistanceMeters)
		assert.Equal(t, model.FallbackBike, spots[0].Kind)
		require.NotNil(t, spots[0].BikesAvailable)
		assert.Equal(t, 5, *spots[0].BikesAvailable)
		assert.Equal(t, "中くらい", spots[1].Name)
		require.NotNil(t, spots[1].BikesAvailable)
		assert.Equal(t, 0, *spots[1].BikesAvailable)
		assert.Equal(t, 12, *spots[1].DocksAvailable)
	})

	t.Run("最大10件", func(t *testing.T) {
		repo := &fakeBikePortRepo{}
		for i := 0; i < 14; i++ {
			repo.ports = append(repo.ports, model.BikePort{Name: "p", Location: northOf(float64(400 - i*20))})
		}

		spots := NewBikeShareStrategy(repo).Locate(context.Background(), &shinjuku)
		require.Len(t, spots, 10)
		for i := 1; i < len(spots); i++ {
			assert.Less(t, spots[i-1].ExactDistanceKm, spots[i].ExactDistanceKm)
		}
	})

	t.Run("座標がnilなら呼び出さない", func(t *testing.T) {
		repo := &fakeBikePortRepo{}
		spots := NewBikeShareStrategy(repo).Locate(context.Background(), nil)
		assert.Empty(t, spots)
		assert.Equal(t, 0, repo.calls)
	})

	t.Run("取得失敗は空", func(t *testing.T) {
		repo := &fakeBikePortRepo{err: model.NewFetchError("gbfs", "stations", errors.New("timeout"))}
		spots := NewBikeShareStrategy(repo).Locate(context.Background(), &shinjuku)
		assert.NotNil(t, spots)
		assert.Empty(t, spots)
	})
}

func TestBusStopStrategy_Locate(t *testing.T) {
	t.Run("近い順・路線情報付き・足切りなし", func(t *testing.T) {
		repo := &fakeBusStopRepo{stops: []model.BusStopCandidate{
			{DisplayName: "新宿駅西口, 西新宿, 新宿区", Location: northOf(200)},
			{DisplayName: "西新宿一丁目, 新宿区", Location: northOf(700)},
			{DisplayName: "渋谷新宿線入口, 渋谷区", Location: northOf(20)},
		}}

		spots := NewBusStopStrategy(repo, model.DefaultBusLineTable()).Locate(context.Background(), &shinjuku)
		require.Len(t, spots, 3)

		assert.Equal(t, "渋谷新宿線入口", spots[0].Name)
		// 表の先頭（渋谷）が優先される
		assert.Equal(t, "都営バス 渋谷営業所", spots[0].Line)
		assert.Equal(t, "新宿駅", spots[0].Destination)

		assert.Equal(t, "新宿駅西口", spots[1].Name)
		assert.Equal(t, "京王バス", spots[1].Line)
		assert.Equal(t, "池袋駅", spots[1].Destination)

		assert.Equal(t, "西新宿一丁目", spots[2].Name)
		assert.Equal(t, 700, spots[2].DistanceMeters)
		assert.Equal(t, "京王バス", spots[2].Line)
		assert.Nil(t, spots[2].BikesAvailable)
	})

	t.Run("一致しないバス停はプレースホルダー", func(t *testing.T) {
		repo := &fakeBusStopRepo{stops: []model.BusStopCandidate{
			{DisplayName: "中野坂上, 中野区", Location: northOf(100)},
		}}

		spots := NewBusStopStrategy(repo, model.DefaultBusLineTable()).Locate(context.Background(), &shinjuku)
		require.Len(t, spots, 1)
		assert.Equal(t, model.PlaceholderBusLine, spots[0].Line)
		assert.Equal(t, model.PlaceholderBusDestination, spots[0].Destination)
	})

	t.Run("検索範囲は±0.005度", func(t *testing.T) {
		repo := &fakeBusStopRepo{}
		NewBusStopStrategy(repo, nil).Locate(context.Background(), &shinjuku)
		require.Equal(t, 1, repo.calls)
		assert.InDelta(t, shinjuku.Lon-0.005, repo.lastBound.Min.Lon(), 1e-9)
		assert.InDelta(t, shinjuku.Lat-0.005, repo.lastBound.Min.Lat(), 1e-9)
		assert.InDelta(t, shinjuku.Lon+0.005, repo.lastBound.Max.Lon(), 1e-9)
		assert.InDelta(t, shinjuku.Lat+0.005, repo.lastBound.Max.Lat(), 1e-9)
	})

	t.Run("座標がnil・取得失敗は空", func(t *testing.T) {
		repo := &fakeBusStopRepo{err: errors.New("503")}
		strategy := NewBusStopStrategy(repo, model.DefaultBusLineTable())

		assert.Empty(t, strategy.Locate(context.Background(), nil))
		assert.Equal(t, 0, repo.calls)
		assert.Empty(t, strategy.Locate(context.Background(), &shinjuku))
	})
}
