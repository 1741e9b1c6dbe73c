package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	BackendLocal      = "local"
	BackendCloudinary = "cloudinary"

	defaultPort       = "5000"
	defaultJWTTTL     = "168h" // 7 days
	defaultUploadDir  = "./uploads"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultAssetRoot  = "autohub"
	defaultMongoDB    = "autohub"
	defaultCORSOrigin = "http://localhost:3000"
)

type Config struct {
	AppEnv        string
	Port          string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration

	// StorageBackend selects the asset store implementation. The backend is
	// a deployment decision, not a per-route one.
	StorageBackend  string
	UploadDir       string
	CloudinaryURL   string
	AssetRootFolder string

	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.MongoURI = strings.TrimSpace(os.Getenv("MONGO_URI"))
	cfg.MongoDatabase = getEnv("MONGO_DATABASE", defaultMongoDB)

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.StorageBackend = strings.ToLower(getEnv("STORAGE_BACKEND", BackendLocal))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.CloudinaryURL = strings.TrimSpace(os.Getenv("CLOUDINARY_URL"))
	cfg.AssetRootFolder = getEnv("ASSET_ROOT_FOLDER", defaultAssetRoot)

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigin), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func validate(cfg *Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI must be set")
	}
	switch cfg.StorageBackend {
	case BackendLocal:
		if cfg.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty with STORAGE_BACKEND=local")
		}
	case BackendCloudinary:
		if cfg.CloudinaryURL == "" {
			return fmt.Errorf("CLOUDINARY_URL must be set with STORAGE_BACKEND=cloudinary")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: %s, %s", BackendLocal, BackendCloudinary)
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.IsProd() && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod JWT_SECRET must be set and not default")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
