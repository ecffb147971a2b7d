package config

const (
	EnvPrefix = "skillswap"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "SKILLSWAP_APP_ENV"
	EnvAppPort  = "SKILLSWAP_APP_PORT"
	EnvDBDSN    = "SKILLSWAP_DB_DSN"
	EnvDBHost   = "SKILLSWAP_DB_HOST"
	EnvDBUser   = "SKILLSWAP_DB_USER"
	EnvDBName   = "SKILLSWAP_DB_NAME"
	EnvRedisURL = "SKILLSWAP_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
