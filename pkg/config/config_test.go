package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"INPUT_PATH", "OUTPUT_PATH", "OUTPUT_FORMAT", "DATA_DIR", "SERVER_BIND", "SERVER_PORT", "LOG_LEVEL", "APP_ENV", "SHICI_STRICT"} {
		t.Setenv(k, "")
	}
	Strict = false

	loaded := Init()

	assert.False(t, loaded)
	assert.Equal(t, "input.json", InputPath)
	assert.Equal(t, "output.json", OutputPath)
	assert.Empty(t, OutputFormat)
	assert.Equal(t, "127.0.0.1:8080", ServerAddr())
	assert.False(t, Strict)
}

func TestInitEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INPUT_PATH", "/data/raw.json")
	t.Setenv("OUTPUT_PATH", "/data/poems.json")
	t.Setenv("OUTPUT_FORMAT", "YAML")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SHICI_STRICT", "true")
	t.Cleanup(func() { Strict = false })

	Init()

	assert.Equal(t, "/data/raw.json", InputPath)
	assert.Equal(t, "/data/poems.json", OutputPath)
	assert.Equal(t, "yaml", OutputFormat)
	assert.Equal(t, "127.0.0.1:9090", ServerAddr())
	assert.True(t, Strict)
}

func TestInitLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// t.Setenv registers restoration; unset so godotenv does not skip the key.
	t.Setenv("INPUT_PATH", "")
	os.Unsetenv("INPUT_PATH")
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("INPUT_PATH=from-dotenv.json\n"), 0644)
	assert.NoError(t, err)

	loaded := Init()

	assert.True(t, loaded)
	assert.Equal(t, "from-dotenv.json", InputPath)
}
