package service

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"RailEscape-App/internal/domain/model"
)

// DefaultMaxLegGoroutines 同時に評価する区間数の上限
const DefaultMaxLegGoroutines = 5

// ParallelLegEvaluator は区間ごとのリアルタイム情報取得を並行で行う
type ParallelLegEvaluator struct {
	signals       *TransitSignalService
	maxGoroutines int
}

// NewParallelLegEvaluator は新しい並行区間評価インスタンスを作成
func NewParallelLegEvaluator(signals *TransitSignalService, maxGoroutines int) *ParallelLegEvaluator {
	if maxGoroutines <= 0 {
		maxGoroutines = DefaultMaxLegGoroutines
	}
	return &ParallelLegEvaluator{
		signals:       signals,
		maxGoroutines: maxGoroutines,
	}
}

// EvaluateLegs はすべての区間を独立に評価し、入力と同じ順序で返す
// 取得失敗は既定値に畳み込まれるため、この処理自体は失敗しない
func (p *ParallelLegEvaluator) EvaluateLegs(ctx context.Context, legs model.Itinerary) []model.EvaluatedLeg {
	results := make([]model.EvaluatedLeg, len(legs))
	if len(legs) == 0 {
		return results
	}

	log.Printf("🚀 区間評価開始: %d区間を並行評価", len(legs))
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(min(len(legs), p.maxGoroutines))
	for i, leg := range legs {
		g.Go(func() error {
			results[i] = EvaluateLeg(leg, p.fetchSignal(ctx, leg))
			return nil
		})
	}
	_ = g.Wait()

	alertCount := 0
	for _, r := range results {
		if r.Alert {
			alertCount++
		}
	}
	log.Printf("✅ 区間評価完了: %v (区間:%d, 遅延:%d)", time.Since(start), len(results), alertCount)
	return results
}

// fetchSignal は1区間分の運行情報・混雑度・乗車駅座標を並行で取得する
// 強制遅延の区間は運行情報と混雑度を取得しない
func (p *ParallelLegEvaluator) fetchSignal(ctx context.Context, leg model.Leg) LegSignal {
	var (
		signal LegSignal
		wg     sync.WaitGroup
	)

	if !leg.ForceDisruption {
		wg.Add(2)
		go func() {
			defer wg.Done()
			signal.StatusText = p.signals.LineStatus(ctx, leg.LineID)
		}()
		go func() {
			defer wg.Done()
			signal.Congestion = p.signals.Congestion(ctx, leg.LineID)
		}()
	}

	signal.StartGeo = p.signals.StationCoordinate(ctx, leg.StartStationID)
	wg.Wait()
	return signal
}
