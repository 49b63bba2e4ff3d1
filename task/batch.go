package task

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/input"
)

// RunBatch 执行批量计算任务
// 功能：读取收入文件，并发计算，按配置格式写出结果
// 参数：c-取消控制
// 返回：错误信息
// 算法说明：
// 1. 按batch.input读取全部收入
// 2. 以control.workers为并发上限调用ComputeAll
// 3. 写出到batch.output（为空则写到默认输出），格式为yaml或csv
func (ctx *Context) RunBatch(c context.Context) error {
	all := ctx.runtimeConfig.All
	in, err := input.Init(all.Batch.Input)
	if err != nil {
		return err
	}
	log.Infof("[%s] computing %d incomes with %d workers", ctx.job, len(in.Incomes), ctx.runtimeConfig.C.Workers)

	results, err := taxengine.ComputeAll(c, in.Incomes, ctx.runtimeConfig.C.Workers)
	if err != nil {
		var batchErr *taxengine.BatchError
		if errors.As(err, &batchErr) {
			return errors.Wrapf(err, "batch input %s", in.Sources[batchErr.Index])
		}
		return errors.Wrap(err, "batch compute")
	}

	out := ctx.stdout
	if all.Batch.Output != "" {
		f, err := os.Create(all.Batch.Output)
		if err != nil {
			return errors.Wrap(err, "create batch output")
		}
		defer f.Close()
		out = f
	}
	if err := writeResults(out, all.Batch.Format, results); err != nil {
		return err
	}
	if all.Batch.Output != "" {
		log.Infof("[%s] results written to %s", ctx.job, all.Batch.Output)
	}
	return nil
}

func writeResults(w io.Writer, format string, results []*taxengine.Computation) error {
	switch format {
	case config.FormatCSV:
		return WriteCSV(w, results)
	default:
		return WriteYAML(w, results)
	}
}
