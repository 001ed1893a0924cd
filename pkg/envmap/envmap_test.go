package envmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
)

func TestEnv_Lookup(t *testing.T) {
	t.Setenv("ENVMAP_AMBIENT", "ambient")
	t.Setenv("ENVMAP_SHADOWED", "ambient")

	env := envmap.New(envmap.OS)
	env.Set("ENVMAP_LOCAL", "local")
	env.Set("ENVMAP_EMPTY", "")
	env.Set("ENVMAP_SHADOWED", "local")

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{name: "local", key: "ENVMAP_LOCAL", want: "local", wantOK: true},
		{name: "local empty is present", key: "ENVMAP_EMPTY", want: "", wantOK: true},
		{name: "fallback", key: "ENVMAP_AMBIENT", want: "ambient", wantOK: true},
		{name: "local shadows fallback", key: "ENVMAP_SHADOWED", want: "local", wantOK: true},
		{name: "absent", key: "ENVMAP_ABSENT", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := env.Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnv_NoFallback(t *testing.T) {
	t.Setenv("ENVMAP_AMBIENT", "ambient")

	var env envmap.Env
	_, ok := env.Lookup("ENVMAP_AMBIENT")
	assert.False(t, ok, "zero Env has no fallback")

	env.Set("K", "v")
	assert.Equal(t, "v", env.Get("K"))
}

func TestEnv_Order(t *testing.T) {
	env := envmap.New(nil)
	env.Set("B", "1")
	env.Set("A", "2")
	env.Set("B", "3")

	assert.Equal(t, []string{"B", "A"}, env.Keys())
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"B=3", "A=2"}, env.Environ())
	assert.Equal(t, map[string]string{"A": "2", "B": "3"}, env.Map())

	local, ok := env.Local("A")
	require.True(t, ok)
	assert.Equal(t, "2", local)
}

func TestFromMap(t *testing.T) {
	env := envmap.FromMap(map[string]string{"Z": "1", "A": "2"}, envmap.Empty)
	assert.Equal(t, []string{"A", "Z"}, env.Keys())
}

func TestParseEnviron(t *testing.T) {
	got := envmap.ParseEnviron([]string{"A=1", "B=x=y", "C=", "broken"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, got)
}
