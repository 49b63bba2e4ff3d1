package task

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v2"
)

func newTestContext(t *testing.T, c config.Config, stdout *bytes.Buffer) *Context {
	t.Helper()
	rc, err := config.NewRuntimeConfig(c)
	require.NoError(t, err)
	return NewContext("test", rc, stdout)
}

func writeIncomes(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "incomes.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRunBatchYAML(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out bytes.Buffer
	ctx := newTestContext(t, config.Config{
		Batch:   config.Batch{Input: config.InputPath{File: writeIncomes(t, "1000000\n2000000\n")}},
		Control: config.Control{Workers: 2},
	}, &out)
	require.NoError(t, ctx.RunBatch(context.Background()))

	var reports []Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "925000.00", reports[0].Net)
	assert.Equal(t, "0.00", reports[0].New.Final)
	assert.Equal(t, "192400.00", reports[1].New.Final)
	assert.Equal(t, "278200.00", reports[1].Old.Final)
	assert.Equal(t, "new", reports[1].Winner)
	assert.Len(t, reports[1].New.Breakdown, 5)
}

func TestRunBatchCSVFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")
	ctx := newTestContext(t, config.Config{
		Batch: config.Batch{
			Input:  config.InputPath{File: writeIncomes(t, "2000000\n")},
			Output: outPath,
			Format: config.FormatCSV,
		},
	}, &bytes.Buffer{})
	require.NoError(t, ctx.RunBatch(context.Background()))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// 表头 + 新税制5行 + 旧税制6行
	require.Len(t, rows, 12)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "new", rows[1][2])
	assert.Equal(t, "192400.00", rows[1][10])
	assert.Equal(t, "old", rows[6][2])
	assert.Equal(t, "278200.00", rows[6][10])
}

func TestRunBatchInvalidIncome(t *testing.T) {
	in := writeIncomes(t, "1000000\nnot-a-number\n")
	ctx := newTestContext(t, config.Config{
		Batch: config.Batch{Input: config.InputPath{File: in}},
	}, &bytes.Buffer{})
	err := ctx.RunBatch(context.Background())
	require.Error(t, err)
	assert.True(t, taxengine.IsInvalidIncome(err))
	assert.Contains(t, err.Error(), in)
}

func TestRunSimulationDeterministic(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := config.Config{Simulation: config.Simulation{Seed: 11, Count: 300}}
	a, err := newTestContext(t, c, &bytes.Buffer{}).RunSimulation(context.Background())
	require.NoError(t, err)
	b, err := newTestContext(t, c, &bytes.Buffer{}).RunSimulation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 300, a.Count)
	assert.Equal(t, 300, a.PreferNew+a.PreferOld+a.Tie)
	assert.Equal(t, "test", a.Job)

	var out bytes.Buffer
	require.NoError(t, WriteSummary(&out, a))
	assert.Contains(t, out.String(), "prefer_new:")
}

func TestRunSimulationCanceled(t *testing.T) {
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestContext(t, config.Config{}, &bytes.Buffer{}).RunSimulation(cctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	var results []*taxengine.Computation
	for _, income := range []string{"0", "1000000", "2000000", "60000000"} {
		c, err := taxengine.ComputeString(income)
		require.NoError(t, err)
		results = append(results, c)
	}
	s := summarize(results)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 1, s.Tie)
	assert.Equal(t, 3, s.PreferNew)
	assert.InDelta(t, 0.25, s.SurchargeShare, 1e-9)
	assert.InDelta(t, 0.5, s.ZeroTaxShareNew, 1e-9)
	assert.InDelta(t, 0.25, s.ZeroTaxShareOld, 1e-9)

	empty := summarize(nil)
	assert.Equal(t, "0.00", empty.New.Mean)
}
