package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/school-services/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Name:     "homework-service",
		SSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=homework-service sslmode=disable", dsn)
}
