package main

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string
	Format      string // "json" or "console"
	OutputPath  string
	Development bool
}

func logConfig(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:       v.GetString(CfgLogLevel),
		Format:      v.GetString(CfgLogFormat),
		OutputPath:  v.GetString(CfgLogOutput),
		Development: v.GetBool(CfgLogDevelopment),
	}
}

// NewLogger creates a structured logger from config. Unknown levels fall back
// to info.
func NewLogger(config LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	}
	return zapConfig.Build()
}
