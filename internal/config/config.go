package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SensorSimulated = "simulated"
	SensorTCS34725  = "tcs34725"
)

type Config struct {
	ListenAddr         string
	DataPath           string
	APName             string
	SampleCount        int
	SampleIntervalMS   int
	PollIntervalMS     int
	SensorKind         string
	I2CDevice          string
	SensorAddress      int
	SensorATime        int
	SensorGain         int
	SimulatedHold      int
	SimulatedJitter    int
	CalibrationEnabled bool
	HistoryLimit       int
	MaxUploadSizeBytes int64
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		DataPath:           getEnv("DATA_PATH", "./data/state.json"),
		APName:             getEnv("AP_NAME", "Coresenxergo_AP"),
		SampleCount:        getEnvInt("SAMPLE_COUNT", 5),
		SampleIntervalMS:   getEnvInt("SAMPLE_INTERVAL_MS", 10),
		PollIntervalMS:     getEnvInt("POLL_INTERVAL_MS", 50),
		SensorKind:         strings.ToLower(getEnv("SENSOR_KIND", SensorSimulated)),
		I2CDevice:          getEnv("I2C_DEVICE", "/dev/i2c-1"),
		SensorAddress:      getEnvInt("SENSOR_ADDRESS", 0x29),
		SensorATime:        getEnvInt("SENSOR_ATIME", 0xEB),
		SensorGain:         getEnvInt("SENSOR_GAIN", 0x00),
		SimulatedHold:      getEnvInt("SIMULATED_HOLD", 20),
		SimulatedJitter:    getEnvInt("SIMULATED_JITTER", 0),
		CalibrationEnabled: getEnvBool("CALIBRATION_ENABLED", false),
		HistoryLimit:       getEnvInt("HISTORY_LIMIT", 50),
		MaxUploadSizeBytes: getEnvInt64("MAX_UPLOAD_SIZE_BYTES", 64*1024),
	}

	if cfg.SampleCount <= 0 {
		return Config{}, errors.New("sample count must be > 0")
	}
	if cfg.SampleIntervalMS < 0 {
		return Config{}, errors.New("sample interval ms must be >= 0")
	}
	if cfg.PollIntervalMS <= 0 {
		return Config{}, errors.New("poll interval ms must be > 0")
	}
	if cfg.SensorKind != SensorSimulated && cfg.SensorKind != SensorTCS34725 {
		return Config{}, errors.New("sensor kind must be simulated or tcs34725")
	}
	if cfg.SensorATime < 0 || cfg.SensorATime > 0xFF {
		return Config{}, errors.New("sensor atime must be in [0,255]")
	}
	if cfg.SensorGain < 0 || cfg.SensorGain > 3 {
		return Config{}, errors.New("sensor gain must be in [0,3]")
	}
	if cfg.SimulatedHold <= 0 {
		return Config{}, errors.New("simulated hold must be > 0")
	}
	if cfg.HistoryLimit <= 0 {
		return Config{}, errors.New("history limit must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt accepts decimal or 0x-prefixed hex, the way register values are
// usually written.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
	if err != nil {
		return fallback
	}
	return int(n)
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
