package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	config.Load()
	return tmp
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("SHELF_LOGGING_ENABLED", "true")
	t.Setenv("SHELF_LOGGING_LEVEL", "warn")
	t.Setenv("SHELF_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestDebugForcesDebugLevel(t *testing.T) {
	setupTest(t)
	t.Setenv("SHELF_DEBUG", "true")
	t.Setenv("SHELF_LOGGING_LEVEL", "error")
	config.Load()

	require.Equal(t, "debug", FromGlobalConfig().Level)
}

func TestLogDirUnderStateDir(t *testing.T) {
	tmp := setupTest(t)

	dir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "shelf", "logs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabledIsNoop(t *testing.T) {
	logger, err := Init(Config{})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)

	logger.With("k", "v").Info("ignored")
	require.NoError(t, logger.Shutdown())
}

func TestInitWritesRedactedJSON(t *testing.T) {
	tmp := setupTest(t)

	cfg := Config{Enabled: true, Level: "debug", MaxFiles: 3, Command: "list products", PID: 42}
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.With("component", "api").Debug("fetch", "url", "https://example.test", "api_key", "s3cr3t")
	logger.Info("keyboard", "keyboard", "qwerty")
	require.NoError(t, logger.Shutdown())
	require.NoError(t, logger.Shutdown(), "second shutdown is a no-op")

	matches, err := filepath.Glob(filepath.Join(tmp, "shelf", "logs", FilePrefix+"*_PID42_list_products.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	entries := readEntries(t, matches[0])
	require.Len(t, entries, 2)
	require.Equal(t, "fetch", entries[0]["msg"])
	require.Equal(t, "api", entries[0]["component"])
	require.Equal(t, redacted, entries[0]["api_key"])
	require.Equal(t, "https://example.test", entries[0]["url"])
	require.Equal(t, "qwerty", entries[1]["keyboard"])
	require.EqualValues(t, 42, entries[1]["pid"])
}

func TestLevelFiltering(t *testing.T) {
	tmp := setupTest(t)

	logger, err := Init(Config{Enabled: true, Level: "warn", MaxFiles: 3, Command: "tui", PID: 7})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Shutdown())

	matches, _ := filepath.Glob(filepath.Join(tmp, "shelf", "logs", "*.log"))
	require.Len(t, matches, 1)
	entries := readEntries(t, matches[0])
	require.Len(t, entries, 1)
	require.Equal(t, "shown", entries[0]["msg"])
}

func TestRotateKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.log", FilePrefix, i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		stamp := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), nil, 0600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{FilePrefix + "3.log", FilePrefix + "4.log", "other.log"}, names)
}

func TestIsSensitiveKey(t *testing.T) {
	cases := map[string]bool{
		"password":      true,
		"Auth-Header":   true,
		"session_token": true,
		"keyboard":      false,
		"title":         false,
	}
	for key, want := range cases {
		require.Equal(t, want, isSensitiveKey(key), key)
	}
}

func TestGlobalLifecycle(t *testing.T) {
	setupTest(t)
	t.Setenv("SHELF_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	path := CurrentLogFile()
	require.NotEmpty(t, path)
	require.True(t, strings.HasPrefix(filepath.Base(path), FilePrefix))

	Info("hello", "n", 1)
	require.NoError(t, ShutdownGlobal())
	require.Empty(t, CurrentLogFile())

	entries := readEntries(t, path)
	require.NotEmpty(t, entries)
	require.Equal(t, "hello", entries[len(entries)-1]["msg"])
}
