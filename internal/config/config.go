package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string      `yaml:"log-level" env-default:"info"`
	HTTPPort          string      `yaml:"http-port" env-default:"9090"`
	SocketPort        string      `yaml:"socket-port" env-default:"8080"`
	Redis             Redis       `yaml:"redis"`
	SQLiteStoragePath string      `yaml:"sqlite-storage-path" env-default:"results.db"`
	Environment       Environment `yaml:"environment"`
	Training          Training    `yaml:"training"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Environment - the reward policy of the learning environment.
type Environment struct {
	IllegalMovePenalty float64 `yaml:"illegal-move-penalty" env-default:"-0.1"`
	ForfeitAfter       int     `yaml:"forfeit-after" env-default:"10"`
	OpponentSeed       int64   `yaml:"opponent-seed" env-default:"0"`
}

// Training - the in-process training run executed on startup.
type Training struct {
	Enabled        bool    `yaml:"enabled" env-default:"false"`
	Episodes       int     `yaml:"episodes" env-default:"20000"`
	WarmupEpisodes int     `yaml:"warmup-episodes" env-default:"500"`
	Epsilon        float64 `yaml:"epsilon" env-default:"0.1"`
	LearningRate   float64 `yaml:"learning-rate" env-default:"0.5"`
	Discount       float64 `yaml:"discount" env-default:"0.9"`
	Seed           int64   `yaml:"seed" env-default:"1"`
	ReportEvery    int     `yaml:"report-every" env-default:"1000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
