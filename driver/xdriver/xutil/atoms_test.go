package xutil

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomNames(t *testing.T) {
	var st struct {
		WM_PROTOCOLS xproto.Atom
		NetWMName    xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	}
	names, err := AtomNames(&st)
	require.NoError(t, err)
	assert.Equal(t, []string{"WM_PROTOCOLS", "_NET_WM_NAME"}, names)

	_, err = AtomNames(st)
	assert.Error(t, err)

	var bad struct{ Name string }
	_, err = AtomNames(&bad)
	assert.Error(t, err)
}
