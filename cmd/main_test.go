package main

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Default(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"cmd"}

	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"cmd", "-c", "custom.env"}

	configPath := parseFlags()
	assert.Equal(t, "custom.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
		"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "PREDICTION_CACHE_EXP_SECOND",
		"KAFKA_ADDR", "KAFKA_TOPIC",
		"MODEL_DIR", "STATIC_DIR", "MIGRATIONS_DIR",
		"JWT_SECRET_KEY", "JWT_EXP_SECOND",
	} {
		t.Setenv(key, "")
	}

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheExpSecond,
		kafkaAddr, kafkaTopic,
		modelDir, staticDir, migrationsDir,
		jwtSecret, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "database", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, "", redisPassword)
	assert.Equal(t, 3600, cacheExpSecond)
	assert.Equal(t, "", kafkaAddr)
	assert.Equal(t, "predictions", kafkaTopic)
	assert.Equal(t, "model", modelDir)
	assert.Equal(t, "frontend/build", staticDir)
	assert.Equal(t, "migrations", migrationsDir)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 86400, jwtExp)
	assert.Equal(t, 24*time.Hour, time.Duration(jwtExp)*time.Second)
}

func TestParseConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("KAFKA_ADDR", "kafka:9092")
	t.Setenv("JWT_EXP_SECOND", "3600")

	_, appPort, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _, _,
		kafkaAddr, _,
		_, _, _,
		_, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, 15432, pgPort)
	assert.Equal(t, "kafka:9092", kafkaAddr)
	assert.Equal(t, 3600, jwtExp)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _, _,
		_, _,
		_, _, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
