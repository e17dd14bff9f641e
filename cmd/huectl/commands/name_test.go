package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRenamesLight(t *testing.T) {
	br := &stubBridge{}

	out, err := executeWithBridge(br, "name", "4", "Reading Lamp")
	require.NoError(t, err)

	assert.Equal(t, [][2]string{{"4", "Reading Lamp"}}, br.renames)
	assert.Contains(t, out, `Set light 4 name to "Reading Lamp"`)
}

func TestNameRequiresTwoArgs(t *testing.T) {
	br := &stubBridge{}

	_, err := executeWithBridge(br, "name", "4")
	require.Error(t, err)
	assert.Empty(t, br.renames)
}
