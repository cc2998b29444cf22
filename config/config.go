package config

import (
	"fmt"
	"time"

	"github.com/Temutjin2k/driver-twin/internal/service/twin"
	"github.com/Temutjin2k/driver-twin/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server   ServerConfig
		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Auth     Auth
		Twin     TwinConfig

		LogLevel string `env:"LOG_LEVEL" default:"INFO"`
	}

	ServerConfig struct {
		Port string `env:"SERVER_PORT" default:"3000"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"twin_user"`
		Password string `env:"DATABASE_PASSWORD" default:"twin_pass"`
		Database string `env:"DATABASE_DATABASE" default:"twin_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`

		// ConsumerEnabled turns the trip-completed ingestion consumer on.
		ConsumerEnabled bool `env:"RABBITMQ_CONSUMER_ENABLED" default:"true"`
		// PublisherEnabled turns optimization-completed publishing on.
		PublisherEnabled bool `env:"RABBITMQ_PUBLISHER_ENABLED" default:"true"`
	}

	Auth struct {
		JWTSecret string `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}

	// TwinConfig exposes the twin's tuning constants. Defaults mirror
	// twin.DefaultParams; deployments override per market.
	TwinConfig struct {
		PreferredHoursCount int `env:"TWIN_PREFERRED_HOURS_COUNT" default:"5"`
		PeakDaysCount       int `env:"TWIN_PEAK_DAYS_COUNT" default:"3"`
		DefaultFatigueHours int `env:"TWIN_DEFAULT_FATIGUE_HOURS" default:"8"`
		MinSessions         int `env:"TWIN_MIN_SESSIONS" default:"5"`

		EarlyShiftOffsetHours int `env:"TWIN_EARLY_SHIFT_OFFSET_HOURS" default:"2"`

		FatigueDecayPerHour float64 `env:"TWIN_FATIGUE_DECAY_PER_HOUR" default:"0.05"`
		FatigueFloor        float64 `env:"TWIN_FATIGUE_FLOOR" default:"0.5"`
		PeakDayBonus        float64 `env:"TWIN_PEAK_DAY_BONUS" default:"1.15"`

		WeightHourOverlap  float64 `env:"TWIN_WEIGHT_HOUR_OVERLAP" default:"0.40"`
		WeightDayOverlap   float64 `env:"TWIN_WEIGHT_DAY_OVERLAP" default:"0.25"`
		WeightHourShift    float64 `env:"TWIN_WEIGHT_HOUR_SHIFT" default:"0.20"`
		WeightOverwork     float64 `env:"TWIN_WEIGHT_OVERWORK" default:"0.15"`
		ShiftScaleHours    float64 `env:"TWIN_SHIFT_SCALE_HOURS" default:"6"`
		OverworkScaleHours float64 `env:"TWIN_OVERWORK_SCALE_HOURS" default:"10"`
		LowConfidenceCap   float64 `env:"TWIN_LOW_CONFIDENCE_CAP" default:"0.5"`

		MinFeasibility float64 `env:"TWIN_MIN_FEASIBILITY" default:"0.3"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

// Params converts the configured tuning into the twin's parameter set.
func (c TwinConfig) Params() twin.Params {
	return twin.Params{
		PreferredHoursCount: c.PreferredHoursCount,
		PeakDaysCount:       c.PeakDaysCount,
		DefaultFatigueHours: c.DefaultFatigueHours,
		MinSessions:         c.MinSessions,

		EarlyShiftOffsetHours: c.EarlyShiftOffsetHours,

		FatigueDecayPerHour: c.FatigueDecayPerHour,
		FatigueFloor:        c.FatigueFloor,
		PeakDayBonus:        c.PeakDayBonus,

		WeightHourOverlap:  c.WeightHourOverlap,
		WeightDayOverlap:   c.WeightDayOverlap,
		WeightHourShift:    c.WeightHourShift,
		WeightOverwork:     c.WeightOverwork,
		ShiftScaleHours:    c.ShiftScaleHours,
		OverworkScaleHours: c.OverworkScaleHours,
		LowConfidenceCap:   c.LowConfidenceCap,

		MinFeasibility: c.MinFeasibility,
	}
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
