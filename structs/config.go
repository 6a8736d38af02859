package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Database *DatabaseConfig
	Cache    *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Pos       *PosConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // POS Admin
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CacheConfig struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	TerminalID        string // identifier of the POS terminal allowed to log in
	TerminalPinHash   string // argon2id hash of the terminal PIN
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	Enabled      bool
}

type PosConfig struct {
	WalkInCustomerName string
	LowStockThreshold  int
	SessionTTL         time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	AuthLimit     int
	AuthWindow    time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}
