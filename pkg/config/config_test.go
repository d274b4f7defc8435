package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-sync-hook/pkg/config"
)

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("INTEGRATION_USER_EMAIL", "  connector@example.com ")
	t.Setenv("CRM_ENVIRONMENT", "sandbox")
	t.Setenv("CRM_SANDBOX_URL", "https://sandbox.crm.example.com/lightning/r/")
	t.Setenv("COMPANY_TIMEZONE", "America/Bogota")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_LOOKUP_TTL_SECONDS", "30")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "connector@example.com", cfg.Integration.ServiceAccountEmail)
	assert.Equal(t, "SANDBOX", cfg.CRM.Environment)
	assert.Equal(t, "https://sandbox.crm.example.com/lightning/r/", cfg.CRM.SandboxURL)
	assert.Equal(t, "America/Bogota", cfg.Integration.Timezone)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.LookupTTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_SinCuentaDeIntegracion_RetornaError(t *testing.T) {
	t.Setenv("INTEGRATION_USER_EMAIL", "")

	_, err := config.Load()
	assert.Error(t, err, "sin la cuenta de integración el gate no puede evaluarse")
}

func TestLoad_ZonaHorariaInvalida_RetornaError(t *testing.T) {
	t.Setenv("INTEGRATION_USER_EMAIL", "connector@example.com")
	t.Setenv("COMPANY_TIMEZONE", "Mars/Olympus")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "erp", Password: "p@ss:w/rd", DBName: "crm_sync", SSLMode: "disable"}
	assert.Equal(t, "postgres://erp:p%40ss%3Aw%2Frd@db:5432/crm_sync?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
