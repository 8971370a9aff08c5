package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "catalog", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalog sslmode=disable", cfg.DSN())
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 25, orDefault(0, 25))
	assert.Equal(t, 10, orDefault(10, 25))
}
