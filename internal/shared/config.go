package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	HFBase       string
	HFKey        string
	HFModels     []string
	HFTimeout    time.Duration
	FallbackOnly bool

	CacheTTL    time.Duration
	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/travelagg?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		HFBase:       env("HF_BASE_URL", "https://router.huggingface.co/v1"),
		HFKey:        env("HF_API_KEY", ""),
		HFModels:     splitList(env("HF_MODELS", "openai/gpt-oss-120b:cerebras,meta-llama/Llama-3.2-3B-Instruct,microsoft/Phi-3-mini-4k-instruct")),
		HFTimeout:    time.Duration(atoi("HF_TIMEOUT_SECONDS", 20)) * time.Second,
		FallbackOnly: env("USE_FALLBACK_PARSER", "") == "true",

		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.HFKey == "" && !c.FallbackOnly {
		log.Warn().Msg("HF_API_KEY is empty; free-text parsing will use the deterministic fallback")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
