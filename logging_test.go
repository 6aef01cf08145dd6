package gallery

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "gallery", false)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.SetDebug(true)
	l.Debugf("visible %d", 3)
	l.Warnf("careful")
	l.Errorf("broken")

	assert.Equal(t, ""+
		"[gallery] INFO: shown 2\n"+
		"[gallery] DEBUG: visible 3\n"+
		"[gallery] WARN: careful\n"+
		"[gallery] ERROR: broken\n", buf.String())
	assert.True(t, l.DebugEnabled())
}

func TestApp_Logger(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, NewApp().Logger())

	var buf bytes.Buffer
	app = NewApp().UseModules(LoggingModule{Prefix: "p", Output: &buf})
	app.Logger().Warnf("w")
	appReporter{app: app}.Errorf("e")
	assert.Equal(t, "[p] WARN: w\n[p] ERROR: e\n", buf.String())
}

func TestLogger_MinimumLevelAndCounts(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "", true)
	l.SetLevel(LevelWarn)

	l.Debugf("d")
	l.Infof("i")
	l.Warnf("w1")
	l.Warnf("w2")
	l.Errorf("e")

	assert.Equal(t, "WARN: w1\nWARN: w2\nERROR: e\n", buf.String())
	assert.Equal(t, 0, l.Count(LevelInfo))
	assert.Equal(t, 2, l.Count(LevelWarn))
	assert.Equal(t, 1, l.Count(LevelError))
	assert.False(t, l.DebugEnabled())

	// Disabling debug does not lower a stricter minimum.
	l.SetDebug(false)
	assert.Equal(t, LevelWarn, l.Level())
	l.SetDebug(true)
	assert.Equal(t, LevelDebug, l.Level())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"Error":   LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "LEVEL(7)", Level(7).String())
}

func TestLoggingModule_Level(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp().UseModules(LoggingModule{Level: LevelError, Output: &buf})
	app.Logger().Warnf("quiet")
	app.Logger().Errorf("loud")
	assert.Equal(t, "ERROR: loud\n", buf.String())

	buf.Reset()
	app = NewApp().UseModules(LoggingModule{Level: LevelError, Debug: true, Output: &buf})
	app.Logger().Debugf("shown")
	assert.Equal(t, "DEBUG: shown\n", buf.String())
}
