package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RailEscape-App/internal/domain/model"
)

func TestTransitSignalService(t *testing.T) {
	ctx := context.Background()
	const line = "odpt.Railway:JR-East.Yamanote"

	t.Run("取得成功", func(t *testing.T) {
		f := newFakeSignals()
		f.statuses[line] = "運転を見合わせています。"
		f.delays[line] = []int{0, 240}
		f.stations["odpt.Station:JR-East.Yamanote.Shinjuku"] = model.Coordinate{Lat: 35.690921, Lon: 139.700258}
		s := f.service()

		assert.Equal(t, "運転を見合わせています。", s.LineStatus(ctx, line))
		assert.Equal(t, model.CongestionCrowded, s.Congestion(ctx, line).Level)
		geo := s.StationCoordinate(ctx, "odpt.Station:JR-East.Yamanote.Shinjuku")
		require.NotNil(t, geo)
		assert.Equal(t, 35.690921, geo.Lat)
	})

	t.Run("取得失敗は既定値", func(t *testing.T) {
		f := newFakeSignals()
		f.statusErr = errUpstream
		f.delayErr = errUpstream
		f.geoErr = errUpstream
		s := f.service()

		assert.Equal(t, model.StatusUnavailable, s.LineStatus(ctx, line))
		assert.Equal(t, model.UnavailableReading(), s.Congestion(ctx, line))
		assert.Nil(t, s.StationCoordinate(ctx, "odpt.Station:JR-East.Yamanote.Shinjuku"))
	})

	t.Run("空の運行情報は平常運転", func(t *testing.T) {
		f := newFakeSignals()
		f.statuses[line] = ""
		assert.Equal(t, model.StatusNormal, f.service().LineStatus(ctx, line))
	})

	t.Run("列車なしは稼働なし", func(t *testing.T) {
		f := newFakeSignals()
		assert.Equal(t, model.NoOperationReading(), f.service().Congestion(ctx, line))
	})

	t.Run("駅IDが空なら問い合わせない", func(t *testing.T) {
		f := newFakeSignals()
		assert.Nil(t, f.service().StationCoordinate(ctx, ""))
		assert.Empty(t, f.geoCalls)
	})

	t.Run("見つからない駅はnil", func(t *testing.T) {
		f := newFakeSignals()
		assert.Nil(t, f.service().StationCoordinate(ctx, "odpt.Station:Unknown"))
	})
}
