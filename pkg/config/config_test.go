package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent/config.toml")
	require.NoError(t, err)

	assert.Equal(t, "cornerstore", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, DefaultDSN, cfg.Database.DSN)
	assert.True(t, cfg.Database.Migrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
service_name = "cornerstore-test"
environment = "prod"

[http]
port = 9000

[database]
driver = "mysql"
dsn = "user:pass@tcp(db:3306)/store?parseTime=True"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cornerstore-test", cfg.ServiceName)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "user:pass@tcp(db:3306)/store?parseTime=True", cfg.Database.DSN)
	// 未覆盖的字段仍使用默认值
	assert.Equal(t, 30, cfg.HTTP.ReadTimeout)
}

func TestValidateRejectsUnsupportedDriver(t *testing.T) {
	cfg, err := Load("nonexistent/config.toml")
	require.NoError(t, err)

	cfg.Database.Driver = "postgres"
	assert.Error(t, cfg.Validate())
}

func TestValidateRateLimitRequiresRedis(t *testing.T) {
	cfg, err := Load("nonexistent/config.toml")
	require.NoError(t, err)

	cfg.RateLimit.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Redis.Enabled = true
	assert.NoError(t, cfg.Validate())
}

func TestValidateKafkaRequiresBrokers(t *testing.T) {
	cfg, err := Load("nonexistent/config.toml")
	require.NoError(t, err)

	cfg.Kafka.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Kafka.Brokers = []string{"localhost:9092"}
	assert.NoError(t, cfg.Validate())
}
