package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "devisio"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "DEVISIO_DB_DSN"
	EnvDBHost = "DEVISIO_DB_HOST"
	EnvDBUser = "DEVISIO_DB_USER"
	EnvDBName = "DEVISIO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Billing      BillingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DEVISIO_APP_ENV" required:"true"`
	Port         string `envconfig:"DEVISIO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DEVISIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DEVISIO_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"DEVISIO_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DEVISIO_DB_DSN"`
	Driver string `envconfig:"DEVISIO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DEVISIO_DB_HOST"`
	LegacyPort     int    `envconfig:"DEVISIO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DEVISIO_DB_USER"`
	LegacyPassword string `envconfig:"DEVISIO_DB_PASSWORD"`
	LegacyName     string `envconfig:"DEVISIO_DB_NAME"`
	LegacySSLMode  string `envconfig:"DEVISIO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DEVISIO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DEVISIO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DEVISIO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DEVISIO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"DEVISIO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DEVISIO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"DEVISIO_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DEVISIO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DEVISIO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DEVISIO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DEVISIO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DEVISIO_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DEVISIO_AUTO_MIGRATE" default:"false"`
}

// BillingConfig drives the credit plans sold to artisans.
type BillingConfig struct {
	ShortPlanMonths int `envconfig:"DEVISIO_BILLING_SHORT_PLAN_MONTHS" default:"3"`
	LongPlanMonths  int `envconfig:"DEVISIO_BILLING_LONG_PLAN_MONTHS" default:"12"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   "/" + db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
