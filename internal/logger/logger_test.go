package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 14, 9, 30, 0, 0, time.Local)
}

func TestLogWritesMemoryFileAndEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.txt")
	var echo bytes.Buffer
	l := New(path, &echo)
	l.now = fixedClock

	l.Log("camera switched to: orthographic")
	l.Logf("cube color changed to: %s", "00ff00")

	want := []string{
		"[2026-10-14 09:30:00] camera switched to: orthographic",
		"[2026-10-14 09:30:00] cube color changed to: 00ff00",
	}
	assert.Equal(t, want, l.Lines())
	assert.Equal(t, strings.Join(want, "\n")+"\n", echo.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
	assert.Equal(t, path, l.Path())
}

func TestLinesIsACopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"), nil)
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.Contains(t, l.Lines()[0], "] a")
}

func TestHistoryIsCapped(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"), nil)
	for i := 0; i < maxLines+25; i++ {
		l.Log(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 25"))

	last := l.Last(2)
	require.Len(t, last, 2)
	assert.True(t, strings.HasSuffix(last[1], fmt.Sprintf("line %d", maxLines+24)))
	assert.Nil(t, l.Last(0))
	assert.Len(t, l.Last(10_000), maxLines)
}

func TestConcurrentLog(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"), nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Log("x")
			}
		}()
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 80)
}
