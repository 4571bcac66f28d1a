package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandRequiresTwoArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"only-one"})
	assert.Error(t, err)

	err = rootCmd.Args(rootCmd, []string{"in.elf", "out.h"})
	assert.NoError(t, err)

	err = rootCmd.Args(rootCmd, []string{"in.elf", "out.h", "extra"})
	assert.Error(t, err)
}

func TestRootCommandUsageMentionsBothPaths(t *testing.T) {
	assert.Contains(t, rootCmd.Use, "<input-elf-path>")
	assert.Contains(t, rootCmd.Use, "<output-path>")
}
