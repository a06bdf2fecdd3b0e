package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the environment once at startup.
// The recaptcha secret is mandatory; everything else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("upload.max_request_body_mb", 20)
	v.SetDefault("upload.max_multipart_memory_mb", 8)
	v.SetDefault("recaptcha.score_threshold", 0.3)
	v.SetDefault("recaptcha.verify_url", "")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Upload: UploadConfig{
			MaxRequestBodyMB:     v.GetInt64("upload.max_request_body_mb"),
			MaxMultipartMemoryMB: v.GetInt64("upload.max_multipart_memory_mb"),
		},
		Recaptcha: RecaptchaConfig{
			Secret:         v.GetString("recaptcha.secret"),
			ScoreThreshold: v.GetFloat64("recaptcha.score_threshold"),
			VerifyURL:      v.GetString("recaptcha.verify_url"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
		Sentry: SentryConfig{
			SentryDSN:   v.GetString("sentry.dsn"),
			Environment: v.GetString("sentry.environment"),
		},
		LogLevel: v.GetString("log_level"),
	}

	if cfg.Recaptcha.Secret == "" {
		return nil, errors.New("RECAPTCHA_SECRET is required")
	}

	return cfg, nil
}
