package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PayoutConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	PayoutDB        `yaml:"payout_db"`
	LogConfig       `yaml:"log_config"`
	KafkaService    `yaml:"kafka-service"`
	NotifierService `yaml:"notifier-service"`
	Sweeper         `yaml:"sweeper"`
	Defaults        `yaml:"defaults"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PayoutDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type NotifierService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Sweeper struct {
	// Интервал свипа протухших выплат, секунды
	IntervalSeconds int `yaml:"interval_seconds" env-default:"5"`
}

type Defaults struct {
	// Дефолтное окно обработки выплаты, минуты
	ProcessingTimeMinutes int `yaml:"processing_time_minutes" env-default:"15"`
}

func MustLoad() *PayoutConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYOUT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYOUT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PayoutConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
