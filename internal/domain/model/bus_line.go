package model

import "strings"

// BusLineInfo バス停に付与する路線・行き先
type BusLineInfo struct {
	Line        string `json:"line" yaml:"line"`
	Destination string `json:"destination" yaml:"destination"`
}

// BusHub バス停名に含まれる拠点名と、その路線情報
type BusHub struct {
	Key         string `yaml:"key" validate:"required"`
	Line        string `yaml:"line" validate:"required"`
	Destination string `yaml:"destination" validate:"required"`
}

// BusLineTable バス停名から路線情報を引く簡易対応表
// 正式な路線データではなく、拠点名の部分一致による近似
type BusLineTable []BusHub

// Lookup 表の先頭から順にバス停名と部分一致する拠点を探す
// 一致しなければプレースホルダーを返す
func (t BusLineTable) Lookup(stopName string) BusLineInfo {
	for _, hub := range t {
		if hub.Key != "" && strings.Contains(stopName, hub.Key) {
			return BusLineInfo{Line: hub.Line, Destination: hub.Destination}
		}
	}
	return BusLineInfo{Line: PlaceholderBusLine, Destination: PlaceholderBusDestination}
}

// DefaultBusLineTable 組み込みの拠点表
func DefaultBusLineTable() BusLineTable {
	return BusLineTable{
		{Key: "渋谷", Line: "都営バス 渋谷営業所", Destination: "新宿駅"},
		{Key: "新宿", Line: "京王バス", Destination: "池袋駅"},
		{Key: "東京", Line: "都営バス", Destination: "浜松町"},
		{Key: "品川", Line: "京急バス", Destination: "羽田空港"},
		{Key: "池袋", Line: "東武バス", Destination: "赤坂見附"},
		{Key: "上野", Line: "都営バス", Destination: "浅草"},
		{Key: "浅草", Line: "都営バス", Destination: "押上"},
		{Key: "秋葉原", Line: "都営バス", Destination: "大手町"},
	}
}
