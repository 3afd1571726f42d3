package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	opts := SplitArgs([]string{"run", "-trials=5", "-benchmark", "-quiet"})
	assert.Equal(t, "run", opts.Tool)
	assert.True(t, opts.Profile)
	assert.Equal(t, []string{"-trials=5", "-quiet"}, opts.Args)
}

func TestSplitArgsEmpty(t *testing.T) {
	opts := SplitArgs(nil)
	assert.Empty(t, opts.Tool)
	assert.False(t, opts.Profile)
	assert.Empty(t, opts.Args)
}
