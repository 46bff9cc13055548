package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  server:
    http:
      address: ":8080"
      read_timeout_seconds: 5
    cors: "https://a.example, https://b.example,"
messaging:
  kafka:
    batch_timeout_ms: 50
modules:
  accommodation:
    enabled: true
instrument:
  log_mask_fields: [email, phone]
  trace_sample_ratio: 0.25
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetString("app.server.http.address"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, 50*time.Millisecond, cfg.GetMillisecond("messaging.kafka.batch_timeout_ms"))
	assert.True(t, cfg.GetBool("modules.accommodation.enabled"))
	assert.False(t, cfg.GetBool("modules.testprep.enabled"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, []string{"email", "phone"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Empty(t, cfg.GetArray("missing.key"))
	assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.trace_sample_ratio"), 1e-9)
	assert.NoError(t, cfg.Close())

	_, err = NewViperFromBytes("", nil)
	assert.Error(t, err)
}

func TestNewViper_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	t.Setenv("FORMBITE_APP_SERVER_HTTP_ADDRESS", ":9090")

	cfg, err := NewViper(file)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GetString("app.server.http.address"))

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("FORMBITE_DOTENV_PROBE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FORMBITE_DOTENV_PROBE") })

	LoadDotEnv(filepath.Join(dir, "absent.env"), file)

	assert.Equal(t, "loaded", os.Getenv("FORMBITE_DOTENV_PROBE"))
}
