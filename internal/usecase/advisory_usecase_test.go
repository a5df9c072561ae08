package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RailEscape-App/internal/domain/model"
	"RailEscape-App/internal/domain/service"
)

type recordingEngine struct {
	got service.AdvisoryInput
}

func (e *recordingEngine) ComputeAdvisory(ctx context.Context, in service.AdvisoryInput) *model.AdvisoryResult {
	e.got = in
	return &model.AdvisoryResult{RequestID: "req-1", StartPoint: in.DefaultOrigin}
}

func floatPtr(v float64) *float64 { return &v }

func TestAdvisoryUseCase_CheckTimeline(t *testing.T) {
	defaultOrigin := model.Coordinate{Lat: 35.690921, Lon: 139.700258}

	t.Run("路線IDのない区間を除き、先頭区間の目的地指定を使う", func(t *testing.T) {
		engine := &recordingEngine{}
		u := NewAdvisoryUseCase(engine, defaultOrigin)

		result := u.CheckTimeline(context.Background(), &model.AdvisoryRequest{
			Legs: []model.LegRequest{
				{
					LineID:     "odpt.Railway:JR-East.Yamanote",
					LineName:   "山手線",
					Time:       "08:00",
					BikeTarget: &model.TargetLocation{Lat: floatPtr(35.6812), Lon: floatPtr(139.7671)},
				},
				{LineName: "徒歩"},
				{LineID: "odpt.Railway:TokyoMetro.Ginza", LineName: "銀座線", ForceDelay: true},
			},
			FallbackKind: model.FallbackBus,
		})

		require.NotNil(t, result)
		assert.Equal(t, "req-1", result.RequestID)
		require.Len(t, engine.got.Itinerary, 2)
		assert.Equal(t, "山手線", engine.got.Itinerary[0].LineName)
		assert.Equal(t, "銀座線", engine.got.Itinerary[1].LineName)
		assert.True(t, engine.got.Itinerary[1].ForceDisruption)
		require.NotNil(t, engine.got.DestinationOverride)
		assert.Equal(t, 35.6812, engine.got.DestinationOverride.Lat)
		assert.Equal(t, defaultOrigin, engine.got.DefaultOrigin)
		assert.Equal(t, model.FallbackBus, engine.got.FallbackKind)
	})

	t.Run("最終区間の目的地指定を優先する", func(t *testing.T) {
		engine := &recordingEngine{}
		u := NewAdvisoryUseCase(engine, defaultOrigin)

		u.CheckTimeline(context.Background(), &model.AdvisoryRequest{
			Legs: []model.LegRequest{
				{
					LineID:     "odpt.Railway:JR-East.Yamanote",
					LineName:   "山手線",
					BikeTarget: &model.TargetLocation{Lat: floatPtr(35.70), Lon: floatPtr(139.70)},
				},
				{
					LineID:     "odpt.Railway:TokyoMetro.Marunouchi",
					LineName:   "丸ノ内線",
					BikeTarget: &model.TargetLocation{Lat: floatPtr(35.6812), Lon: floatPtr(139.7671)},
				},
			},
		})

		require.NotNil(t, engine.got.DestinationOverride)
		assert.Equal(t, model.Coordinate{Lat: 35.6812, Lon: 139.7671}, *engine.got.DestinationOverride)
	})

	t.Run("最終区間にだけ目的地指定がある", func(t *testing.T) {
		engine := &recordingEngine{}
		u := NewAdvisoryUseCase(engine, defaultOrigin)

		u.CheckTimeline(context.Background(), &model.AdvisoryRequest{
			Legs: []model.LegRequest{
				{LineID: "odpt.Railway:JR-East.Yamanote", LineName: "山手線"},
				{
					LineID:     "odpt.Railway:TokyoMetro.Marunouchi",
					LineName:   "丸ノ内線",
					BikeTarget: &model.TargetLocation{Lat: floatPtr(35.6812), Lon: floatPtr(139.7671)},
				},
			},
		})

		require.NotNil(t, engine.got.DestinationOverride)
		assert.Equal(t, 35.6812, engine.got.DestinationOverride.Lat)
		assert.Equal(t, 139.7671, engine.got.DestinationOverride.Lon)
	})

	t.Run("起点の指定と代替手段の既定値", func(t *testing.T) {
		engine := &recordingEngine{}
		u := NewAdvisoryUseCase(engine, defaultOrigin)

		u.CheckTimeline(context.Background(), &model.AdvisoryRequest{
			Origin: model.NewCoordinate(35.7, 139.8),
		})

		assert.Equal(t, model.Coordinate{Lat: 35.7, Lon: 139.8}, engine.got.DefaultOrigin)
		assert.Equal(t, model.FallbackBike, engine.got.FallbackKind)
		assert.Empty(t, engine.got.Itinerary)
		assert.Nil(t, engine.got.DestinationOverride)
	})
}
