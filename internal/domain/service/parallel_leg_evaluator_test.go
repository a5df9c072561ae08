package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RailEscape-App/internal/domain/model"
)

func TestParallelLegEvaluator_EvaluateLegs(t *testing.T) {
	f := newFakeSignals()
	f.statuses["line.A"] = model.StatusNormal
	f.statuses["line.C"] = "強風の影響で遅れが出ています。"
	f.delays["line.A"] = []int{30}
	f.delays["line.B"] = []int{0}
	f.delays["line.C"] = []int{60}
	f.stations["st.A1"] = model.Coordinate{Lat: 35.60, Lon: 139.60}

	legs := model.Itinerary{
		{LineID: "line.A", LineName: "A線", StartStationID: "st.A1"},
		{LineID: "line.B", LineName: "B線", StartStationID: "st.B1", ForceDisruption: true},
		{LineID: "line.C", LineName: "C線", StartStationID: "st.C1"},
		{LineID: "line.D", LineName: "D線"},
	}

	got := NewParallelLegEvaluator(f.service(), 2).EvaluateLegs(context.Background(), legs)
	require.Len(t, got, 4)

	// 入力と同じ順序
	assert.Equal(t, "A線", got[0].LineName)
	assert.Equal(t, "B線", got[1].LineName)
	assert.Equal(t, "C線", got[2].LineName)
	assert.Equal(t, "D線", got[3].LineName)

	assert.False(t, got[0].Alert)
	require.NotNil(t, got[0].StartGeo)
	assert.Equal(t, 139.60, got[0].StartGeo.Lon)

	assert.True(t, got[1].Alert)
	assert.Equal(t, model.CongestionSevere, got[1].Congestion.Level)
	assert.Nil(t, got[1].StartGeo)

	// 運行情報のキーワードだけでも遅延
	assert.True(t, got[2].Alert)
	assert.Equal(t, model.CongestionSmooth, got[2].Congestion.Level)

	assert.False(t, got[3].Alert)
	assert.Equal(t, model.MsgNoOperation, got[3].Congestion.Message)

	// 強制遅延の区間は運行情報を取得しない
	assert.Equal(t, 0, f.statusCalls["line.B"])
	assert.Equal(t, 1, f.statusCalls["line.A"])
}

func TestParallelLegEvaluator_Empty(t *testing.T) {
	got := NewParallelLegEvaluator(newFakeSignals().service(), 0).EvaluateLegs(context.Background(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
