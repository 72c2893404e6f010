package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	require.Equal(t, logrus.WarnLevel, ParseLevel("warning"))
	require.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
	require.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestSetup_WritesToFile(t *testing.T) {
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "fxconvert.log")
	closer := Setup("warn", path)

	logrus.Info("hidden")
	logrus.Warn("visible")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.NotContains(t, string(data), "hidden")
	require.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
