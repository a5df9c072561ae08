package httpclient

import (
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// LimitedTransport 外部APIへの同時リクエスト数を制限する RoundTripper
type LimitedTransport struct {
	base http.RoundTripper
	sem  *semaphore.Weighted
}

// NewLimitedTransport は同時実行数 maxInFlight の RoundTripper を作成する
func NewLimitedTransport(base http.RoundTripper, maxInFlight int64) *LimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &LimitedTransport{
		base: base,
		sem:  semaphore.NewWeighted(maxInFlight),
	}
}

// RoundTrip 枠が空くまで待ってからリクエストを送る
// 枠はレスポンスボディが閉じられるまで保持する
// 待機中にコンテキストが切れた場合はそのままエラーになる
func (t *LimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.sem.Acquire(req.Context(), 1); err != nil {
		return nil, err
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.sem.Release(1)
		return nil, err
	}
	resp.Body = &releasingBody{
		ReadCloser: resp.Body,
		release:    func() { t.sem.Release(1) },
	}
	return resp, nil
}

// releasingBody は最初の Close で一度だけ枠を返す
type releasingBody struct {
	io.ReadCloser
	once    sync.Once
	release func()
}

func (b *releasingBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.release)
	return err
}

// NewClient タイムアウト付きの http.Client を作成する
func NewClient(transport http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
