package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/installkit/userinfo/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load(t *testing.T) {
	l := test.NewLogger()
	dir := t.TempDir()

	// missing path
	c := NewC(l)
	require.Error(t, c.Load(filepath.Join(dir, "nope.yml")))

	// empty directory
	c = NewC(l)
	assert.EqualError(t, c.Load(dir), "no config files found at "+dir)

	// files merge in lexical order, later files win
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.yml"), []byte("outer:\n  inner: hi\nlogging:\n  level: info\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02.yaml"), []byte("outer:\n  inner: override\nnew: hi\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "03.txt"), []byte("ignored: true\n"), 0600))

	c = NewC(l)
	require.NoError(t, c.Load(dir))
	assert.Equal(t, "override", c.GetString("outer.inner", ""))
	assert.Equal(t, "hi", c.GetString("new", ""))
	assert.Equal(t, "info", c.GetString("logging.level", ""))
	assert.Nil(t, c.Get("ignored"))
	assert.Equal(t, []string{filepath.Join(dir, "01.yml"), filepath.Join(dir, "02.yaml")}, c.Files())

	// a file named directly loads regardless of extension
	c = NewC(l)
	require.NoError(t, c.Load(filepath.Join(dir, "03.txt")))
	assert.True(t, c.GetBool("ignored", false))

	// invalid yaml
	require.NoError(t, os.WriteFile(filepath.Join(dir, "04.yml"), []byte(" invalid yaml"), 0600))
	c = NewC(l)
	assert.Error(t, c.Load(dir))
}

func TestConfig_LoadString(t *testing.T) {
	l := test.NewLogger()

	c := NewC(l)
	assert.EqualError(t, c.LoadString(""), "Empty configuration")

	c = NewC(l)
	require.NoError(t, c.LoadString("accounts:\n  placeholder_fallback: yes\n"))
	assert.True(t, c.GetBool("accounts.placeholder_fallback", false))

	// a document with only comments is an empty config
	c = NewC(l)
	require.NoError(t, c.LoadString("# nothing here\n"))
	assert.NotNil(t, c.Settings)
	assert.Equal(t, "network", c.GetString("logon.type", "network"))
}

func TestConfig_Get(t *testing.T) {
	l := test.NewLogger()
	// test simple type
	c := NewC(l)
	c.Settings["logon"] = map[string]any{"type": "network"}
	assert.Equal(t, "network", c.Get("logon.type"))

	// test complex type
	inner := []map[string]any{{"name": "1", "server": "2"}}
	c.Settings["accounts"] = map[string]any{"servers": inner}
	assert.EqualValues(t, inner, c.Get("accounts.servers"))

	// test missing
	assert.Nil(t, c.Get("accounts.nope"))
	assert.Nil(t, c.Get("logon.type.deeper"))
}

func TestConfig_GetBool(t *testing.T) {
	l := test.NewLogger()
	c := NewC(l)
	c.Settings["bool"] = true
	assert.Equal(t, true, c.GetBool("bool", false))

	c.Settings["bool"] = "true"
	assert.Equal(t, true, c.GetBool("bool", false))

	c.Settings["bool"] = false
	assert.Equal(t, false, c.GetBool("bool", true))

	c.Settings["bool"] = "false"
	assert.Equal(t, false, c.GetBool("bool", true))

	c.Settings["bool"] = "Y"
	assert.Equal(t, true, c.GetBool("bool", false))

	c.Settings["bool"] = "yEs"
	assert.Equal(t, true, c.GetBool("bool", false))

	c.Settings["bool"] = "N"
	assert.Equal(t, false, c.GetBool("bool", true))

	c.Settings["bool"] = "nO"
	assert.Equal(t, false, c.GetBool("bool", true))

	c.Settings["bool"] = "maybe"
	assert.Equal(t, true, c.GetBool("bool", true))
}
