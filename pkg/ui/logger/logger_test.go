//nolint:paralleltest // tests mutate the shared logger
package logger_test

import (
	"bytes"
	"testing"

	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_Verbose(t *testing.T) {
	var out bytes.Buffer

	logger.Configure(&out, true)
	t.Cleanup(func() { logger.Configure(nil, false) })

	logger.WithComponent("generator").Debug("writing template")

	assert.Equal(t, logrus.DebugLevel, logger.L().GetLevel())
	assert.Contains(t, out.String(), "level=debug")
	assert.Contains(t, out.String(), "component=generator")
	assert.Contains(t, out.String(), `msg="writing template"`)
	assert.NotContains(t, out.String(), "time=")
}

func TestConfigure_Quiet(t *testing.T) {
	var out bytes.Buffer

	logger.Configure(&out, false)
	t.Cleanup(func() { logger.Configure(nil, false) })

	logger.WithComponent("store").Debug("hidden")
	logger.WithComponent("store").Warn("shown")

	assert.Equal(t, logrus.WarnLevel, logger.L().GetLevel())
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}
