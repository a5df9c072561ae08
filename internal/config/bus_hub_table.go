package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"RailEscape-App/internal/domain/model"
)

type busHubFile struct {
	Hubs []model.BusHub `yaml:"hubs" validate:"dive"`
}

// LoadBusLineTable バス停名→路線情報の対応表を読み込む
// パスが空なら組み込みの表を返す
func LoadBusLineTable(path string) (model.BusLineTable, error) {
	if path == "" {
		return model.DefaultBusLineTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("バス路線表の読み込みに失敗: %w", err)
	}
	return ParseBusLineTable(data)
}

// ParseBusLineTable YAMLの内容から対応表を作る（記載順に照合される）
func ParseBusLineTable(data []byte) (model.BusLineTable, error) {
	var file busHubFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("バス路線表のパースに失敗: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("バス路線表の内容が不正です: %w", err)
	}
	log.Printf("🚌 バス路線表を読み込みました: %d件", len(file.Hubs))
	return model.BusLineTable(file.Hubs), nil
}
