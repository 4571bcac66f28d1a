package convert

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureSource = `package main

type Point struct {
	X int
	Y int
}

func Sum(p Point) int {
	return p.X + p.Y
}

func main() {
	p := Point{X: 1, Y: 2}
	println(Sum(p))
}
`

func buildFixture(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("ELF fixtures are not produced on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(src, []byte(fixtureSource), 0o644))

	bin := filepath.Join(dir, "fixture")
	cmd := exec.Command("go", "build", "-gcflags=all=-N -l", "-o", bin, src)
	cmd.Env = append(os.Environ(), "GOOS=linux")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("could not build ELF fixture (no working go toolchain in this environment): %v\n%s", err, out)
	}
	return bin
}

func TestFileProducesNonEmptyHeader(t *testing.T) {
	bin := buildFixture(t)
	out := filepath.Join(t.TempDir(), "out.h")

	var progressCalls int
	err := File(bin, out, func(unitNo, totalUnits, newNodes, totalNodes int) {
		progressCalls++
	})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Positive(t, progressCalls)
}

func TestFileFailsOnMissingInput(t *testing.T) {
	err := File("/nonexistent/path/to/binary", filepath.Join(t.TempDir(), "out.h"), nil)
	require.Error(t, err)
}
