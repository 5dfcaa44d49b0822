package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
	assert.Equal(t, 7, cfg.BrushSize)
	assert.Empty(t, cfg.RemoteAddr)
	assert.False(t, cfg.Advertise)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvWidth:  "640",
		EnvHeight: "480",
		EnvSize:   "3",
		EnvRemote: ":8899",
		EnvMDNS:   "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Width:      640,
		Height:     480,
		BrushSize:  3,
		RemoteAddr: ":8899",
		Advertise:  true,
	}, cfg)
}

func TestMalformedValues(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"width not a number": {EnvWidth: "wide"},
		"height zero":        {EnvHeight: "0"},
		"size negative":      {EnvSize: "-2"},
		"remote no port":     {EnvRemote: "localhost"},
		"mdns not a bool":    {EnvMDNS: "sometimes"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			assert.Error(t, err)
		})
	}
}
