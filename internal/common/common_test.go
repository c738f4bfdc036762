package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "datefmt", PkgAlias("nxdate-generator/datefmt"))
	assert.Equal(t, "time", PkgAlias("time"))
	assert.Equal(t, "datefmt", PkgAlias("example.com/datefmt/v2"))
	assert.Equal(t, "yaml", PkgAlias("gopkg.in/yaml.v3"))
	assert.Empty(t, PkgAlias(""))
}

func TestCountNonEmpty(t *testing.T) {
	assert.Equal(t, 0, CountNonEmpty[[]int]())
	assert.Equal(t, 1, CountNonEmpty([]int{1}, nil))
	assert.Equal(t, 2, CountNonEmpty([]int{1}, []int{2, 3}))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{"a"}))
}
