package appinfo_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/rxkit/pkg/appinfo"
)

func TestVersion_Write(t *testing.T) {
	v := appinfo.Version{Version: "v1.2.3", GitCommit: "0123456789abcdef", Platform: "linux/amd64"}

	t.Run("short", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, v.Write(buf, "rxkit", "text", true))
		assert.Equal(t, "v1.2.3 (01234567)\n", buf.String())
	})

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, v.Write(buf, "rxkit", "", false))
		assert.Contains(t, buf.String(), "Application : rxkit\n")
		assert.Contains(t, buf.String(), "Platform    : linux/amd64\n")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, v.Write(buf, "rxkit", "json", false))
		var got appinfo.Version
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, v, got)
	})

	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, v.Write(buf, "rxkit", "YAML", false))
		var got appinfo.Version
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, v, got)
	})
}

func TestGetVersion(t *testing.T) {
	v := appinfo.GetVersion()
	assert.Equal(t, "dev", v.Version)
	assert.Equal(t, "dev", v.ShortLine())
	assert.NotEmpty(t, v.GoVersion)
}
