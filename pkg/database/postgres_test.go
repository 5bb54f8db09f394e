package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/colleague-student-api/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5433, User: "colleague", Password: "secret", Name: "student", SSLMode: "require"}

	assert.Equal(t, "host=db port=5433 user=colleague password=secret dbname=student sslmode=require", DSN(cfg, ""))
	assert.Equal(t, "host=db port=5433 user=colleague password=secret dbname=student sslmode=require application_name=student-api", DSN(cfg, "student-api"))
}
