package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)

	_, err = New(Options{Output: "syslog"})
	assert.Error(t, err)

	_, err = New(Options{Output: "file"})
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kalinsky.log")
	l, err := New(Options{Level: "debug", Format: "json", Output: "file", File: path, MaxSizeMB: 1})
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Sync())
	assert.FileExists(t, path)
}

func TestHelpers_WriteToInstalledLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(zap.NewNop()) })

	Infof("assembly %s queued", "asm_001")
	Warnf("slow %d", 3)
	With("assembly_id", "asm_002").Errorf("cut failed")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "assembly asm_001 queued", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "cut failed", entries[2].Message)
	assert.Equal(t, "asm_002", entries[2].ContextMap()["assembly_id"])
}
