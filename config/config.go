package config

import (
	"posadmin_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "POS Admin"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-POS-Session"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "posadmin_db"),
				SSLMode:      getEnvAsString("DB_SSL_MODE", "disable"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:      getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
				Password:     getEnvAsString("CACHE_PASSWORD", ""),
				DB:           getEnvAsInt("CACHE_DB", 0),
				PoolSize:     getEnvAsInt("CACHE_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("CACHE_MIN_IDLE_CONNS", 2),
				DialTimeout:  getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsTimeDuration("CACHE_WRITE_TIMEOUT", 3*time.Second),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 12*time.Hour),
				TerminalID:        getEnvAsString("AUTH_TERMINAL_ID", "register-1"),
				TerminalPinHash:   getEnvAsString("AUTH_TERMINAL_PIN_HASH", ""),
			},
			Email: &structs.EmailConfig{
				ResendAPIKey: getEnvAsString("EMAIL_RESEND_API_KEY", ""),
				FromAddress:  getEnvAsString("EMAIL_FROM_ADDRESS", "receipts@posadmin.local"),
				Enabled:      getEnvAsBool("EMAIL_ENABLED", false),
			},
			Pos: &structs.PosConfig{
				WalkInCustomerName: getEnvAsString("POS_WALK_IN_CUSTOMER_NAME", "Walk-in Customer"),
				LowStockThreshold:  getEnvAsInt("POS_LOW_STOCK_THRESHOLD", 10),
				SessionTTL:         getEnvAsTimeDuration("POS_SESSION_TTL", 2*time.Hour),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:     getEnvAsInt("RATE_LIMIT_AUTH_LIMIT", 10),
				AuthWindow:    getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL_LIMIT", 300),
				GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
