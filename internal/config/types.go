package config

import "time"

type Config struct {
	Server    ServerConfig
	Upload    UploadConfig
	Recaptcha RecaptchaConfig
	CORS      CORSConfig
	Sentry    SentryConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type UploadConfig struct {
	MaxRequestBodyMB     int64
	MaxMultipartMemoryMB int64
}

type RecaptchaConfig struct {
	Secret         string
	ScoreThreshold float64
	VerifyURL      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SentryConfig struct {
	SentryDSN   string
	Environment string
}
