package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesToFileAndStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	var stdout bytes.Buffer
	logger := logrus.New()
	c, err := Configure(logger, Options{File: path, Level: "warn", JSON: true, Stdout: &stdout})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.WithField("request_id", "abc").Error("boom")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "previous run")
	assert.Contains(t, content, `"msg":"boom"`)
	assert.Contains(t, content, `"request_id":"abc"`)
	assert.Contains(t, content, `"file":`)
	assert.NotContains(t, content, "dropped")
	assert.Contains(t, stdout.String(), "boom")

	logger.Error("after close")
	assert.Contains(t, stdout.String(), "after close")
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	_, err := Configure(logrus.New(), Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestConfigureFailsOnUnwritablePath(t *testing.T) {
	_, err := Configure(logrus.New(), Options{File: filepath.Join(t.TempDir(), "missing", "x.log"), Level: "info"})
	assert.Error(t, err)
}
