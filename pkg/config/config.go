package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every configuration variable the app reads.
const EnvPrefix = "TABLEDESK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Env var names referenced in error messages and tests.
const (
	EnvAppEnv = "TABLEDESK_APP_ENV"
	EnvPort   = "TABLEDESK_APP_PORT"
	EnvDBDSN  = "TABLEDESK_DB_DSN"
	EnvDBHost = "TABLEDESK_DB_HOST"
	EnvDBUser = "TABLEDESK_DB_USER"
	EnvDBName = "TABLEDESK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = defaultSQLiteDSN
		}
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultSQLiteDSN is used when TABLEDESK_USE_SQLITE is set without an explicit DSN.
const defaultSQLiteDSN = "file:tabledesk.db?cache=shared"

type AppConfig struct {
	Env          string `envconfig:"TABLEDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"TABLEDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TABLEDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TABLEDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TABLEDESK_DB_DSN"`
	Driver string `envconfig:"TABLEDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TABLEDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"TABLEDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TABLEDESK_DB_USER"`
	LegacyPassword string `envconfig:"TABLEDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"TABLEDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"TABLEDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TABLEDESK_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"TABLEDESK_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"TABLEDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TABLEDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TABLEDESK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TABLEDESK_REDIS_ADDR"`
	Password     string        `envconfig:"TABLEDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"TABLEDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TABLEDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TABLEDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TABLEDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TABLEDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TABLEDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TABLEDESK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TABLEDESK_JWT_ISSUER" default:"tabledesk"`
	ExpirationMinutes int    `envconfig:"TABLEDESK_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TABLEDESK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TABLEDESK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TABLEDESK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TABLEDESK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TABLEDESK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"TABLEDESK_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite    bool `envconfig:"TABLEDESK_USE_SQLITE" default:"false"`
	AutoMigrate  bool `envconfig:"TABLEDESK_AUTO_MIGRATE" default:"false"`
	SeedDemoData bool `envconfig:"TABLEDESK_SEED_DEMO_DATA" default:"false"`
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
