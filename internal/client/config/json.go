package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/infowise/internal/flagx"
	"github.com/dmitrijs2005/infowise/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	UserAPIURL          string         `json:"user_api_url"`
	NewsAPIURL          string         `json:"news_api_url"`
	DatabasePath        string         `json:"database_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	Locale              string         `json:"locale"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c or -config. Keys missing
// from the file keep their current value. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.UserAPIURL, jc.UserAPIURL)
	setString(&cfg.NewsAPIURL, jc.NewsAPIURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout.Duration)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval.Duration)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
