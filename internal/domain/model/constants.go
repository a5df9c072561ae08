package model

// DisruptionKeywords 運行情報テキストに含まれていれば遅延とみなす語
var DisruptionKeywords = []string{"遅れ", "見合わせ", "運休", "事故", "折返し"}

// 運行情報テキストの既定値
const (
	StatusNormal      = "平常運転"
	StatusUnavailable = "情報なし"
	StatusForcedTest  = "【TEST】運転見合わせ"
)

// 混雑度メッセージ
const (
	MsgNoOperation     = "稼働なし"
	MsgDataUnavailable = "データ取得不可"
	MsgSmooth          = "🟢 スムーズ"
	MsgCrowdedFormat   = "🟡 混雑 (最大%d分遅れ)"
	MsgSevereFormat    = "🔴 激混み (最大%d分遅れ)"
	MsgForcedTest      = "🔴 TEST激混み (遅延大)"
)

// 強制遅延時の混雑度
const (
	ForcedTrainCount = 99
	ForcedMaxDelay   = 30
)

// 代替手段のプレースホルダー表記
const (
	PlaceholderBusLine        = "バス路線"
	PlaceholderBusDestination = "目的地"
	PlaceholderBusStopName    = "バス停不明"
)

// DefaultDepartureTime 区間の出発時刻が読めない場合に使う時刻
const DefaultDepartureTime = "08:00"
