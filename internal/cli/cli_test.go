package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/sysbench/internal/config"
)

func TestWorkloadsCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"workloads"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "SUBSYSTEM"))

	want := []string{"CPU", "Multithreading", "GPU", "RAM", "Storage", "IOPS"}
	for i, sub := range want {
		assert.True(t, strings.HasPrefix(lines[i+1], sub+" "), "line %d: %q", i+1, lines[i+1])
	}
	assert.Contains(t, buf.String(), "100 writes x 1 MiB")
	assert.Contains(t, buf.String(), "throughput")
}

func TestUseColor(t *testing.T) {
	assert.True(t, useColor(config.ColorAlways))
	assert.False(t, useColor(config.ColorNever))
}
