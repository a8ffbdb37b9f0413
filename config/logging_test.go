package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLogLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLogLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLogLevel("loud"))
}

func TestRotatingFileRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)

	r, err := OpenRotatingFile(path)
	require.NoError(t, err)
	r.maxSize = 16
	defer r.Close()

	_, err = r.Write([]byte("0123456789\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("abcdefghij\n"))
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "0123456789\n", string(backup))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij\n", string(current))
}

func TestRotateLogsKeepsBackupLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)
	for i := 0; i < maxLogFiles+2; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
		require.NoError(t, rotateLogs(path))
	}

	for i := 1; i <= maxLogFiles; i++ {
		_, err := os.Stat(path + "." + string(rune('0'+i)))
		assert.NoError(t, err)
	}
	_, err := os.Stat(path + "." + string(rune('0'+maxLogFiles+1)))
	assert.True(t, os.IsNotExist(err))
}

func TestInitLoggerWritesFileAndConsole(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	path := filepath.Join(t.TempDir(), LogFileName)
	var console bytes.Buffer

	closer, err := InitLogger(path, "debug", &console)
	require.NoError(t, err)

	log.Debug().Str("component", "test").Msg("hello palette")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello palette"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, console.String(), "hello palette")
}
