package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesFollowLevel(t *testing.T) {
	var out bytes.Buffer
	l, err := New(Options{Writer: &out})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("object morphed", "wall", "front")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "object morphed")
	assert.Contains(t, lines[0], "wall=front")
	assert.Contains(t, out.String(), "object morphed")
	assert.NotContains(t, out.String(), "hidden")
}

func TestDebugLevelAndPrefix(t *testing.T) {
	var out bytes.Buffer
	l, err := New(Options{Writer: &out, Level: "debug", Prefix: "facing"})
	require.NoError(t, err)
	l.Debug("dot", "value", 0.95)
	require.Len(t, l.Lines(), 1)
	assert.Contains(t, l.Lines()[0], "facing")
}

func TestBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	l, err := New(Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	l.Record("cmd walls")
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] cmd walls$`, lines[0])

	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestHistoryIsBounded(t *testing.T) {
	l, err := New(Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	for i := 0; i < maxHistory+10; i++ {
		l.Record(fmt.Sprint(i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxHistory)
	assert.Contains(t, lines[0], "] 10")
	assert.Contains(t, lines[len(lines)-1], fmt.Sprintf("] %d", maxHistory+9))
}

func TestFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shapeshift.log")
	for _, msg := range []string{"first", "second"} {
		l, err := New(Options{Writer: &bytes.Buffer{}, File: path})
		require.NoError(t, err)
		l.Warn(msg)
		require.NoError(t, l.Close())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
