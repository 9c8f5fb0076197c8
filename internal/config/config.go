package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	Provider      string              `yaml:"provider" env:"PROVIDER" env-default:"amadeus"`
	Log           LogConfig           `yaml:"log"`
	HTTP          HTTPConfig          `yaml:"http"`
	Search        SearchConfig        `yaml:"search"`
	Amadeus       AmadeusConfig       `yaml:"amadeus"`
	Aviationstack AviationstackConfig `yaml:"aviationstack"`
	Redis         RedisConfig         `yaml:"redis"`
	Jaeger        JaegerConfig        `yaml:"jaeger"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// SearchConfig holds the fallback route used when the client does not pass
// origin/destination query parameters.
type SearchConfig struct {
	Origin      string `yaml:"origin" env:"SEARCH_ORIGIN" env-default:"APN"`
	Destination string `yaml:"destination" env:"SEARCH_DESTINATION" env-default:"DTW"`
}

type AmadeusConfig struct {
	BaseURL   string        `yaml:"base_url" env:"AMADEUS_BASE_URL" env-default:"https://test.api.amadeus.com"`
	APIKey    string        `yaml:"api_key" env:"AMADEUS_API_KEY"`
	APISecret string        `yaml:"api_secret" env:"AMADEUS_API_SECRET"`
	Timeout   time.Duration `yaml:"timeout" env:"AMADEUS_TIMEOUT" env-default:"10s"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"AMADEUS_TOKEN_TTL" env-default:"25m"`
}

type AviationstackConfig struct {
	BaseURL   string        `yaml:"base_url" env:"AVIATIONSTACK_BASE_URL" env-default:"https://api.aviationstack.com"`
	AccessKey string        `yaml:"access_key" env:"AVIATIONSTACK_ACCESS_KEY"`
	Limit     int           `yaml:"limit" env:"AVIATIONSTACK_LIMIT" env-default:"100"`
	Timeout   time.Duration `yaml:"timeout" env:"AVIATIONSTACK_TIMEOUT" env-default:"10s"`
}

// RedisConfig is optional: an empty Addr disables the bearer-token store and
// the amadeus client authenticates on every request.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type JaegerConfig struct {
	Address string `yaml:"address" env:"JAEGER_ADDRESS"`
}

func MustLoad() *Config {
	return MustLoadByPath(fetchConfigPath())
}

func MustLoadByPath(configPath string) *Config {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Env-only deployments (the serverless case) carry no config file.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("cannot read config from env: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
