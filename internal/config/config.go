package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	S3      S3Config
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings for the signed-URL API.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// StorageConfig selects the object storage adapter.
type StorageConfig struct {
	Provider string `mapstructure:"provider"`
}

// S3Config holds S3 client settings. Endpoint is only set for S3-compatible
// stacks (LocalStack, MinIO); leave it empty for AWS. PublicEndpoint, when set,
// replaces the scheme and host of presigned URLs handed to browsers.
type S3Config struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	PublicEndpoint string `mapstructure:"public_endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	UseSSL         bool   `mapstructure:"use_ssl"`
	PresignExpiry  int64  `mapstructure:"presign_expiry"`
	MaxUploadMB    int64  `mapstructure:"max_upload_mb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the WEBPCONV_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WEBPCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")

	v.SetDefault("storage.provider", "s3")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.presign_expiry", 3600)
	v.SetDefault("s3.max_upload_mb", 5)

	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173")

	envBindings := map[string]string{
		"server.port":          "WEBPCONV_SERVER_PORT",
		"server.read_timeout":  "WEBPCONV_SERVER_READ_TIMEOUT",
		"server.write_timeout": "WEBPCONV_SERVER_WRITE_TIMEOUT",
		"storage.provider":     "WEBPCONV_STORAGE_PROVIDER",
		"s3.region":            "WEBPCONV_S3_REGION",
		"s3.bucket":            "WEBPCONV_S3_BUCKET",
		"s3.endpoint":          "WEBPCONV_S3_ENDPOINT",
		"s3.public_endpoint":   "WEBPCONV_S3_PUBLIC_ENDPOINT",
		"s3.access_key":        "WEBPCONV_S3_ACCESS_KEY",
		"s3.secret_key":        "WEBPCONV_S3_SECRET_KEY",
		"s3.use_ssl":           "WEBPCONV_S3_USE_SSL",
		"s3.presign_expiry":    "WEBPCONV_S3_PRESIGN_EXPIRY",
		"s3.max_upload_mb":     "WEBPCONV_S3_MAX_UPLOAD_MB",
		"cors.allowed_origins": "WEBPCONV_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// The function runtime sets AWS_REGION. Use it unless WEBPCONV_S3_REGION is explicit.
	region := v.GetString("s3.region")
	if r := os.Getenv("AWS_REGION"); r != "" && os.Getenv("WEBPCONV_S3_REGION") == "" {
		region = r
	}

	// Container platforms set PORT. Use it if WEBPCONV_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WEBPCONV_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
	}
	cfg.Storage = StorageConfig{
		Provider: strings.ToLower(strings.TrimSpace(v.GetString("storage.provider"))),
	}
	cfg.S3 = S3Config{
		Region:         region,
		Bucket:         v.GetString("s3.bucket"),
		Endpoint:       v.GetString("s3.endpoint"),
		PublicEndpoint: v.GetString("s3.public_endpoint"),
		AccessKey:      v.GetString("s3.access_key"),
		SecretKey:      v.GetString("s3.secret_key"),
		UseSSL:         v.GetBool("s3.use_ssl"),
		PresignExpiry:  v.GetInt64("s3.presign_expiry"),
		MaxUploadMB:    v.GetInt64("s3.max_upload_mb"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
