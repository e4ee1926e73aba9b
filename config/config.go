package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	JWT    JWTConfig
	Server ServerConfig
	Cache  CacheConfig
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LoginPath    string // Đường dẫn trang login, dùng cho page-level redirect khi chưa đăng nhập
}

// CacheConfig holds tenant cache configuration
// Áp dụng cho từng cache instance (mỗi resource family một instance)
type CacheConfig struct {
	Capacity int           // Số entries tối đa trước khi LRU eviction
	TTL      time.Duration // Tuổi tối đa của entry trước khi lazy expiry
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	jwtExpirationHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SECONDS", "10"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SECONDS", "10"))
	cacheCapacity, _ := strconv.Atoi(getEnv("CACHE_CAPACITY", "100"))
	cacheTTLMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))

	return &Config{
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExpirationHours) * time.Hour,
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			LoginPath:    getEnv("LOGIN_PATH", "/login"),
		},
		Cache: CacheConfig{
			Capacity: cacheCapacity,
			TTL:      time.Duration(cacheTTLMinutes) * time.Minute,
		},
	}
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
