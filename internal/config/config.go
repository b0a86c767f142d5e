package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type FuelConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	FuelDB     `yaml:"fuel_db"`
	LogConfig  `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type FuelDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	AlertTopic    string `yaml:"alert_topic"`
	ApprovalTopic string `yaml:"approval_topic"`
}

func MustLoad() *FuelConfig {

	// Processing env config variable and file
	configPath := os.Getenv("FUEL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("FUEL_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg FuelConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
