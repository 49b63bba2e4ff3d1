package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestInitMixedFiles(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "incomes.txt", "# header\n1000000\n\n  20,00,000  \n")
	yml := writeFile(t, dir, "more.yaml", "incomes:\n  - \"52000000\"\n  - \"₹ 5,00,000\"\n")

	in, err := Init(config.InputPath{File: txt, Files: []string{yml}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000000", "20,00,000", "52000000", "₹ 5,00,000"}, in.Incomes)
	assert.Equal(t, []string{txt, txt, yml, yml}, in.Sources)
}

func TestInitErrors(t *testing.T) {
	_, err := Init(config.InputPath{})
	assert.Error(t, err)

	_, err = Init(config.InputPath{File: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.yml", "salaries: [1]\n")
	_, err = Init(config.InputPath{File: bad})
	assert.Error(t, err)
}
