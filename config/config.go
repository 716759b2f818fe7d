package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	// DebugMode indicates service mode is debug.
	DebugMode = "debug"
	// TestMode indicates service mode is test.
	TestMode = "test"
	// ReleaseMode indicates service mode is release.
	ReleaseMode = "release"
)

type Config struct {
	ServiceName string
	ServiceHost string
	HTTPPort    string

	Environment string // debug, test, release
	Version     string

	MysqlHost     string
	MysqlPort     int
	MysqlUser     string
	MysqlPassword string
	MysqlDatabase string

	MysqlMaxOpenConnections int
	MysqlMaxIdleConnections int
}

// Load ...
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println(ErrEnvNotFound)
	}

	config := Config{}

	config.ServiceName = cast.ToString(getOrReturnDefaultValue("SERVICE_NAME", "office_management"))
	config.ServiceHost = cast.ToString(getOrReturnDefaultValue("SERVICE_HOST", "localhost"))
	config.HTTPPort = cast.ToString(getOrReturnDefaultValue("HTTP_PORT", ":8080"))

	config.Environment = cast.ToString(getOrReturnDefaultValue("ENVIRONMENT", DebugMode))
	config.Version = cast.ToString(getOrReturnDefaultValue("VERSION", "1.0"))

	config.MysqlHost = cast.ToString(getOrReturnDefaultValue("MYSQL_HOST", "localhost"))
	config.MysqlPort = cast.ToInt(getOrReturnDefaultValue("MYSQL_PORT", 3306))
	config.MysqlUser = cast.ToString(getOrReturnDefaultValue("MYSQL_USER", "root"))
	config.MysqlPassword = cast.ToString(getOrReturnDefaultValue("MYSQL_PASSWORD", ""))
	config.MysqlDatabase = cast.ToString(getOrReturnDefaultValue("MYSQL_DATABASE", "office_management"))

	config.MysqlMaxOpenConnections = cast.ToInt(getOrReturnDefaultValue("MYSQL_MAX_OPEN_CONNECTIONS", 50))
	config.MysqlMaxIdleConnections = cast.ToInt(getOrReturnDefaultValue("MYSQL_MAX_IDLE_CONNECTIONS", 10))

	return config
}

func getOrReturnDefaultValue(key string, defaultValue any) any {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return defaultValue
}
