package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Cache         CacheConfig
	AuthRateLimit AuthRateLimitConfig
	Preferences   PreferencesConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"ROVERENT_APP_ENV" required:"true"`
	Port         string `envconfig:"ROVERENT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ROVERENT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ROVERENT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ROVERENT_DB_DSN"`
	Driver string `envconfig:"ROVERENT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ROVERENT_DB_HOST"`
	LegacyPort     int    `envconfig:"ROVERENT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ROVERENT_DB_USER"`
	LegacyPassword string `envconfig:"ROVERENT_DB_PASSWORD"`
	LegacyName     string `envconfig:"ROVERENT_DB_NAME"`
	LegacySSLMode  string `envconfig:"ROVERENT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ROVERENT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ROVERENT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ROVERENT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ROVERENT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ROVERENT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ROVERENT_REDIS_ADDR"`
	Password     string        `envconfig:"ROVERENT_REDIS_PASSWORD"`
	DB           int           `envconfig:"ROVERENT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ROVERENT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ROVERENT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ROVERENT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ROVERENT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ROVERENT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"ROVERENT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"ROVERENT_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"ROVERENT_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"ROVERENT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	Iterations int `envconfig:"ROVERENT_PASSWORD_ITERATIONS" default:"100000"`
	SaltLen    int `envconfig:"ROVERENT_PASSWORD_SALT_LEN" default:"16"`
	KeyLen     int `envconfig:"ROVERENT_PASSWORD_KEY_LEN" default:"32"`
}

type CacheConfig struct {
	VehicleListTTL time.Duration `envconfig:"ROVERENT_CACHE_VEHICLE_LIST_TTL" default:"5m"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"ROVERENT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"ROVERENT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"ROVERENT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"ROVERENT_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"ROVERENT_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"ROVERENT_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type PreferencesConfig struct {
	Dir string `envconfig:"ROVERENT_PREFERENCES_DIR"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ROVERENT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ROVERENT_AUTO_MIGRATE" default:"false"`
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
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
