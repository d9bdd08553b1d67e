package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	a := NewLogger("auth")
	b := NewLogger("auth")
	c := NewLogger("vcs")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "auth", a.Data["component"])
}

func TestSetVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	NewLogger("test").Debug("state transition")

	assert.Equal(t, logrus.DebugLevel, base().GetLevel())
	assert.Contains(t, buf.String(), "state transition")
	assert.Contains(t, buf.String(), "component=test")
}
