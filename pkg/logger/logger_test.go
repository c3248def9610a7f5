package logger

import (
	"gradebook_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		mode, level string
		want        string
	}{
		{"debug", "error", "debug"},
		{"release", "warn", "warn"},
		{"release", "bogus", "info"},
		{"release", "", "info"},
	}
	for _, c := range cases {
		cfg := &config.Config{Server: config.ServerConfig{Mode: c.mode}, Log: config.LogConfig{Level: c.level}}
		assert.Equal(t, c.want, resolveLevel(cfg).String(), "mode=%s level=%s", c.mode, c.level)
	}
}

func TestApplyConfigChangesLevel(t *testing.T) {
	InitNop()
	SetLevel(zap.InfoLevel)
	t.Cleanup(func() { SetLevel(zap.InfoLevel) })

	ApplyConfig(&config.Config{Server: config.ServerConfig{Mode: "release"}, Log: config.LogConfig{Level: "error"}})
	assert.Equal(t, zap.ErrorLevel, Level())
}
