package utils_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kiryu-dev/reef-encounter/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, utils.EncodeJson(&buf, map[string]int{"grey": 9}))
	assert.Contains(t, buf.String(), "\n  \"grey\"")

	decoded, err := utils.DecodeJson[map[string]int](&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"grey": 9}, decoded)
}

func TestDecodeJsonInvalid(t *testing.T) {
	_, err := utils.DecodeJson[map[string]int](strings.NewReader("{"))
	require.Error(t, err)
}
