package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Import struct {
		// Path of the server-local CSV used by the direct admin import.
		FilePath string `yaml:"file_path"`
	} `yaml:"import"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
	if p := os.Getenv("IMPORT_FILE_PATH"); p != "" {
		cfg.Import.FilePath = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-flash"
	}
	if cfg.Import.FilePath == "" {
		cfg.Import.FilePath = "property_listing.csv"
	}

	// Validation
	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.Database.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("REDIS_DB must be non-negative")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
