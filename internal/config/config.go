package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DataConfig locates the workbook files that back the three registries.
// Filenames are resolved relative to Dir unless absolute.
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	TeamFile     string `mapstructure:"team_file"`
	DocumentFile string `mapstructure:"document_file"`
	DrawingFile  string `mapstructure:"drawing_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TeamPath returns the resolved path of the team roster workbook.
func (d DataConfig) TeamPath() string { return d.resolve(d.TeamFile) }

// DocumentPath returns the resolved path of the document registry workbook.
func (d DataConfig) DocumentPath() string { return d.resolve(d.DocumentFile) }

// DrawingPath returns the resolved path of the drawing registry workbook.
func (d DataConfig) DrawingPath() string { return d.resolve(d.DrawingFile) }

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file: defaults plus environment variables
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.team_file", "team.xlsx")
	v.SetDefault("data.document_file", "documents.xlsx")
	v.SetDefault("data.drawing_file", "drawings.xlsx")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Data
	v.BindEnv("data.dir", "DATA_DIR")
	v.BindEnv("data.team_file", "DATA_TEAM_FILE")
	v.BindEnv("data.document_file", "DATA_DOCUMENT_FILE")
	v.BindEnv("data.drawing_file", "DATA_DRAWING_FILE")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}
