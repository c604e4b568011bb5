package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/xingzheai/tss-annotator/pkg/auth"
)

type Config struct {
	Host   string `env:"TSS_HOST" envDefault:"https://draw-plus-backend-qa.xingzheai.cn/"`
	Bucket string `env:"StorageBucket" envDefault:"xingzheaidraw"`

	RemoteEnabled bool `env:"XZ_EXT_ENABLE"`
	Worker        bool `env:"ANNOTATOR_WORKER"`

	Token string `env:"TSS_TOKEN"`
	// TokenExpire is a unix timestamp in seconds.
	TokenExpire int64 `env:"TSS_TOKEN_EXPIRE"`

	TempDir         string        `env:"ANNOTATOR_TMP_DIR" envDefault:"tmp"`
	PollInterval    time.Duration `env:"ANNOTATOR_POLL_INTERVAL" envDefault:"2s"`
	JobTimeout      time.Duration `env:"ANNOTATOR_JOB_TIMEOUT" envDefault:"300s"`
	ArtifactDomains []string      `env:"ANNOTATOR_ARTIFACT_DOMAINS" envSeparator:"," envDefault:"*"`

	ModelFree            []string `env:"ANNOTATOR_MODEL_FREE" envSeparator:"," envDefault:"reference_only,reference_adain,reference_adain+attn,revision_clipvision,revision_ignore_prompt"`
	IgnoreNonInpaintMask bool     `env:"ANNOTATOR_IGNORE_NONINPAINT_MASK"`

	Cache  CacheConfig
	Server ServerConfig
}

// CacheConfig locates the result cache. The cache is disabled unless both
// MongoDB and MinIO are configured.
type CacheConfig struct {
	MongoConnectionString string `env:"ANNOTATOR_MONGO_CONNECTION_STRING"`
	MinioEndpoint         string `env:"ANNOTATOR_MINIO_ENDPOINT"`
	MinioAccessKey        string `env:"ANNOTATOR_MINIO_ACCESS_KEY"`
	MinioSecretKey        string `env:"ANNOTATOR_MINIO_SECRET_KEY"`
	MinioBucket           string `env:"ANNOTATOR_MINIO_BUCKET" envDefault:"annotator-cache"`
	MinioLocation         string `env:"ANNOTATOR_MINIO_LOCATION" envDefault:"us-east-1"`
	MinioSSL              bool   `env:"ANNOTATOR_MINIO_SSL"`
}

func (c CacheConfig) Enabled() bool {
	return c.MongoConnectionString != "" && c.MinioEndpoint != ""
}

type ServerConfig struct {
	ListenAddr              string   `env:"ANNOTATOR_LISTEN_ADDR" envDefault:":8080"`
	AllowedOrigins          []string `env:"ANNOTATOR_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	InvalidateSecurityToken string   `env:"ANNOTATOR_INVALIDATE_SECURITY_TOKEN"`
}

// Load reads envFile when given, or a .env file in the working directory when
// present, then parses the process environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		log.Printf("loading env from file %s", envFile)
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using os.Environ only")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg.normalize().validate()
}

// LoadFromEnvironment parses environment instead of the process environment.
func LoadFromEnvironment(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, err
	}

	return cfg.normalize().validate()
}

// Credential returns the bootstrap credential, if one is configured.
func (c Config) Credential() (auth.Credential, bool) {
	if c.Token == "" {
		return auth.Credential{}, false
	}

	return auth.Credential{
		Token:     c.Token,
		ExpiresAt: time.Unix(c.TokenExpire, 0),
	}, true
}

func (c Config) normalize() Config {
	c.Host = strings.TrimRight(c.Host, "/")
	c.ArtifactDomains = dropEmpty(c.ArtifactDomains)
	c.ModelFree = dropEmpty(c.ModelFree)
	c.Server.AllowedOrigins = dropEmpty(c.Server.AllowedOrigins)
	return c
}

// validate rejects a token without expiry, which would never be sent.
func (c Config) validate() (Config, error) {
	if c.Token != "" && c.TokenExpire <= 0 {
		return Config{}, ErrTokenExpiryMissing
	}

	return c, nil
}

func dropEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}

	return result
}

var (
	ErrTokenExpiryMissing = errors.New("TSS_TOKEN is set without TSS_TOKEN_EXPIRE")
)
