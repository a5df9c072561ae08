package model

// CongestionLevel 路線の混雑度（遅延度）
type CongestionLevel int

const (
	CongestionNoData  CongestionLevel = 0
	CongestionSmooth  CongestionLevel = 1
	CongestionCrowded CongestionLevel = 2
	CongestionSevere  CongestionLevel = 3
)

// CongestionReading 1区間分のリアルタイム混雑度
type CongestionReading struct {
	Level      CongestionLevel `json:"level"`
	Message    string          `json:"msg"`
	TrainCount int             `json:"train_count"`
	MaxDelay   int             `json:"max_delay"` // 分
}

// NoOperationReading 稼働中の列車がない場合の値
func NoOperationReading() CongestionReading {
	return CongestionReading{Level: CongestionNoData, Message: MsgNoOperation}
}

// UnavailableReading データ取得に失敗した場合の値
func UnavailableReading() CongestionReading {
	return CongestionReading{Level: CongestionNoData, Message: MsgDataUnavailable}
}
