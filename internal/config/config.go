package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"RailEscape-App/internal/domain/model"
)

// 既定の出発地点（新宿駅周辺）
const (
	DefaultOriginLat = 35.690921
	DefaultOriginLon = 139.700258
)

// Config アプリケーション全体の設定
// グローバル変数にはせず、コンストラクタへ明示的に渡す
type Config struct {
	Port string `validate:"required"`

	ODPTConsumerKey string
	ODPTBaseURL     string `validate:"required,url"`

	GBFSBaseURL  string `validate:"required,url"`
	GBFSSystemID string `validate:"required"`

	NominatimBaseURL   string `validate:"required,url"`
	NominatimUserAgent string `validate:"required"`
	CountryCode        string `validate:"required,len=2"`

	// 設定されていれば列車遅延はGTFS-RTのTripUpdatesから取得する
	GTFSRTTripUpdatesURL string `validate:"omitempty,url"`

	DefaultOrigin model.Coordinate

	StatusTimeout    time.Duration `validate:"gt=0"`
	TrainTimeout     time.Duration `validate:"gt=0"`
	LookupTimeout    time.Duration `validate:"gt=0"`
	MaxOutboundCalls int64         `validate:"gte=1,lte=20"`

	BusHubTablePath string
	DatabaseURL     string
}

// Default 環境変数なしで使える既定値
func Default() *Config {
	return &Config{
		Port:               "8080",
		ODPTBaseURL:        "https://api.odpt.org/api/v4",
		GBFSBaseURL:        "https://api-public.odpt.org/api/v4/gbfs",
		GBFSSystemID:       "docomo-cycle-tokyo",
		NominatimBaseURL:   "https://nominatim.openstreetmap.org",
		NominatimUserAgent: "RailEscapeApp/1.0",
		CountryCode:        "jp",
		DefaultOrigin:      model.Coordinate{Lat: DefaultOriginLat, Lon: DefaultOriginLon},
		StatusTimeout:      2 * time.Second,
		TrainTimeout:       3 * time.Second,
		LookupTimeout:      3 * time.Second,
		MaxOutboundCalls:   10,
	}
}

// Load .env と環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .envファイルが見つかりません。システム環境変数を使用します")
	}
	return FromEnv(os.Getenv)
}

// FromEnv 任意の参照関数から設定を組み立てる（テストではmapを渡す）
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	setString(getenv, "PORT", &cfg.Port)
	setString(getenv, "ODPT_API_KEY", &cfg.ODPTConsumerKey)
	setString(getenv, "ODPT_BASE_URL", &cfg.ODPTBaseURL)
	setString(getenv, "GBFS_BASE_URL", &cfg.GBFSBaseURL)
	setString(getenv, "GBFS_SYSTEM_ID", &cfg.GBFSSystemID)
	setString(getenv, "NOMINATIM_BASE_URL", &cfg.NominatimBaseURL)
	setString(getenv, "NOMINATIM_USER_AGENT", &cfg.NominatimUserAgent)
	setString(getenv, "COUNTRY_CODE", &cfg.CountryCode)
	setString(getenv, "GTFSRT_TRIP_UPDATES_URL", &cfg.GTFSRTTripUpdatesURL)
	setString(getenv, "BUS_HUB_TABLE_PATH", &cfg.BusHubTablePath)
	setString(getenv, "DATABASE_URL", &cfg.DatabaseURL)

	if err := setFloat(getenv, "DEFAULT_LAT", &cfg.DefaultOrigin.Lat); err != nil {
		return nil, err
	}
	if err := setFloat(getenv, "DEFAULT_LON", &cfg.DefaultOrigin.Lon); err != nil {
		return nil, err
	}
	if err := setDuration(getenv, "STATUS_TIMEOUT", &cfg.StatusTimeout); err != nil {
		return nil, err
	}
	if err := setDuration(getenv, "TRAIN_TIMEOUT", &cfg.TrainTimeout); err != nil {
		return nil, err
	}
	if err := setDuration(getenv, "LOOKUP_TIMEOUT", &cfg.LookupTimeout); err != nil {
		return nil, err
	}
	if v := getenv("MAX_OUTBOUND_CALLS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MAX_OUTBOUND_CALLSの値が正しくありません: %w", err)
		}
		cfg.MaxOutboundCalls = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 設定値の検証
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("設定値が不正です: %w", err)
	}
	return nil
}

func setString(getenv func(string) string, key string, dst *string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(getenv func(string) string, key string, dst *float64) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%sの値が正しくありません: %w", key, err)
	}
	*dst = f
	return nil
}

func setDuration(getenv func(string) string, key string, dst *time.Duration) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%sの値が正しくありません: %w", key, err)
	}
	*dst = d
	return nil
}
