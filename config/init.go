package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读取 config.yaml（若存在），再用环境变量覆盖
func Init() {
	once.Do(load)
}

// Get 获取全局配置，未显式 Init 时使用默认值加载
func Get() *Config {
	Init()
	return instance
}

func load() {
	c := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(c); err != nil {
			panic(err)
		}
	}

	if err := envconfig.Process("tyjk", c); err != nil {
		panic(err)
	}

	instance = c
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "3000",
		Prefix: "api",
		Mode:   ModeDebug,
		Database: Database{
			Driver: "sqlite",
			Path:   "tyjk_club.db",
		},
		Storage: Storage{
			Backend: "local",
			Home:    "uploads",
		},
		JWT: JWT{
			AccessSecret: "your-secret-key",
			AccessExpire: 7 * 24 * 3600, // 7 天
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
		ActivityLog: ActivityLog{
			MaxEntries: 1000,
			Store:      "file",
			FilePath:   "logs/activity.json",
			RedisKey:   "tyjk:activity_logs",
		},
	}
}
