package logging

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupVerbose(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	Setup(true, &buf)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
	assert.Equal(t, clog.DebugLevel, L.GetLevel())
}

func TestSetupVerboseReportsCallSite(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	Setup(true, &buf)
	Debugf("where am I")

	out := buf.String()
	assert.Contains(t, out, "logger_test.go")
	assert.NotContains(t, out, "logger.go:")
}

func TestSetupQuiet(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	Setup(false, &buf)

	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("shown %s", "warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warning")
}
