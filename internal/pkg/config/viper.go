package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: FORMBITE_DATABASE_URL overrides database.url.
const EnvPrefix = "FORMBITE"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			slog.Debug("dotenv file not loaded", "file", f, "error", err)
		}
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension. The
// file is watched and re-read on change.
func NewViper(pathFile string) (*Viper, error) {
	v := newViper()

	filename := path.Base(pathFile)
	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(strings.TrimSuffix(filename, path.Ext(filename)))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("config reload failed", "path", pathFile, "err", err)
			return
		}
		slog.Info("config success reloaded", "path", pathFile)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// NewViperFromBytes loads configuration from memory and returns a Viper-backed Config.
// configType should be a format supported by Viper (e.g. "yaml", "json", "toml").
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetInt32 returns the value for key as int32.
func (vc *Viper) GetInt32(key string) int32 {
	return vc.v.GetInt32(key)
}

// GetInt64 returns the value for key as int64.
func (vc *Viper) GetInt64(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetFloat64 returns the value for key as float64.
func (vc *Viper) GetFloat64(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetSecond returns the value for key as seconds.
func (vc *Viper) GetSecond(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Second
}

// GetMillisecond returns the value for key as milliseconds.
func (vc *Viper) GetMillisecond(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Millisecond
}

// GetArray returns the value for key split by commas, blanks removed.
func (vc *Viper) GetArray(key string) []string {
	var raw []string
	switch val := vc.v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	case []any:
		raw = lo.Map(val, func(item any, _ int) string { return fmt.Sprint(item) })
	case []string:
		raw = val
	}

	return lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
