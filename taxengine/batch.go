package taxengine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ComputeAll 并发计算一批文本收入
// 功能：对每条输入调用ComputeString，结果顺序与输入一致
// 参数：ctx-取消控制，incomes-文本收入列表，workers-并发上限（<=0表示不限制）
// 返回：计算结果列表；任意一条无效时返回 *BatchError（包装 InvalidIncomeError），不返回部分结果
// 说明：各次计算之间没有共享状态，只需限制并发度
func ComputeAll(ctx context.Context, incomes []string, workers int) ([]*Computation, error) {
	results := make([]*Computation, len(incomes))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, income := range incomes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := ComputeString(income)
			if err != nil {
				return &BatchError{Index: i, Err: err}
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debugf("computed %d incomes", len(results))
	return results, nil
}
