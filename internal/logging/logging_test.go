package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		level   string
		format  string
		verbose bool
		enabled zapcore.Level
		ok      bool
	}){
		{"", "", false, zapcore.InfoLevel, true},
		{"warn", "json", false, zapcore.WarnLevel, true},
		{"error", "console", true, zapcore.DebugLevel, true},
		{"loud", "", false, zapcore.InfoLevel, false},
		{"", "xml", false, zapcore.InfoLevel, false},
	}

	for _, entry := range table {
		logger, err := New(entry.level, entry.format, entry.verbose)
		if !entry.ok {
			assert.Error(err, entry)
			continue
		}
		if !assert.NoError(err, entry) {
			continue
		}
		assert.True(logger.Core().Enabled(entry.enabled), entry)
		assert.False(logger.Core().Enabled(entry.enabled-1), entry)
	}
}
