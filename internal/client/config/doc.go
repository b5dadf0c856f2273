// Package config loads runtime configuration for the InfoWise CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. INFOWISE_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   user API base URL
//	-n string   news API base URL
//	-d string   local database path
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//
// Environment
//
//	INFOWISE_API_URL, INFOWISE_NEWS_API_URL, INFOWISE_DB_PATH,
//	INFOWISE_REQUEST_TIMEOUT (e.g. "5s"), INFOWISE_LOCALE, INFOWISE_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "user_api_url": "http://localhost:8080",
//	  "news_api_url": "http://localhost:8081",
//	  "database_path": "infowise.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "locale": "es-EC",
//	  "log_level": "info"
//	}
package config
