package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Translation TranslationConfig
	Speech      SpeechConfig
	Synthesis   SynthesisConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type CORSConfig struct {
	// AllowedOrigins defaults to "*" so a local frontend can talk to the
	// gateway without setup. A production deployment must restrict this
	// via CORS_ALLOWED_ORIGINS.
	AllowedOrigins []string
}

type TranslationConfig struct {
	Backend         string // "mymemory" or "google"
	CredentialsFile string // service account JSON, google backend only
	MyMemoryEmail   string // optional, raises MyMemory's free quota
}

type SpeechConfig struct {
	Backend       string // "google" or "openai"
	GoogleAPIKey  string
	GoogleBaseURL string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string // default: "whisper-1"
}

type SynthesisConfig struct {
	Backend       string // "google" or "openai"
	GoogleBaseURL string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string // default: "tts-1"
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Translation: TranslationConfig{
			Backend:         getEnv("TRANSLATE_BACKEND", "mymemory"),
			CredentialsFile: getEnv("TRANSLATE_GOOGLE_CREDENTIALS", ""),
			MyMemoryEmail:   getEnv("MYMEMORY_EMAIL", ""),
		},
		Speech: SpeechConfig{
			Backend:       getEnv("STT_BACKEND", "google"),
			GoogleAPIKey:  getEnv("GOOGLE_SPEECH_API_KEY", ""),
			GoogleBaseURL: getEnv("STT_GOOGLE_BASE_URL", ""),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("STT_OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("STT_OPENAI_MODEL", ""),
		},
		Synthesis: SynthesisConfig{
			Backend:       getEnv("TTS_BACKEND", "google"),
			GoogleBaseURL: getEnv("TTS_GOOGLE_BASE_URL", ""),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("TTS_OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("TTS_OPENAI_MODEL", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
