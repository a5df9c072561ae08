package model

import "fmt"

// FetchError 外部APIの呼び出し失敗を表す
// 取得層の内部でのみ使い、サービス境界で既定値に畳み込まれる
type FetchError struct {
	Source string // "odpt", "gbfs", "nominatim", "gtfsrt" など
	Op     string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError は FetchError を作成する
func NewFetchError(source, op string, err error) *FetchError {
	return &FetchError{Source: source, Op: op, Err: err}
}
