package config

// EnvPrefix is the envconfig prefix shared by all settings.
const EnvPrefix = "ROVERENT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "ROVERENT_APP_ENV"
	EnvPort       = "ROVERENT_APP_PORT"
	EnvRedisURL   = "ROVERENT_REDIS_URL"
	EnvJWTSecret  = "ROVERENT_JWT_SECRET"
	EnvJWTIssuer  = "ROVERENT_JWT_ISSUER"
	EnvJWTExpMins = "ROVERENT_JWT_EXPIRATION_MINUTES"
)

const (
	EnvDBDSN  = "ROVERENT_DB_DSN"
	EnvDBHost = "ROVERENT_DB_HOST"
	EnvDBUser = "ROVERENT_DB_USER"
	EnvDBName = "ROVERENT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
