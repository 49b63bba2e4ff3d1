package task

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/randengine"
)

// RegimeSummary 人口在单一税制下的税负汇总
type RegimeSummary struct {
	Total string `yaml:"total"`
	Mean  string `yaml:"mean"`
}

// PopulationSummary 合成人口的税制比较结果
type PopulationSummary struct {
	Job             string        `yaml:"job"`
	Seed            uint64        `yaml:"seed"`
	Count           int           `yaml:"count"`
	MedianIncome    string        `yaml:"median_income"`
	PreferNew       int           `yaml:"prefer_new"`
	PreferOld       int           `yaml:"prefer_old"`
	Tie             int           `yaml:"tie"`
	New             RegimeSummary `yaml:"new"`
	Old             RegimeSummary `yaml:"old"`
	TotalSavings    string        `yaml:"total_savings"`
	SurchargeShare  float64       `yaml:"surcharge_share"` // 任一税制需缴附加费的人口比例
	ZeroTaxShareNew float64       `yaml:"zero_tax_share_new"`
	ZeroTaxShareOld float64       `yaml:"zero_tax_share_old"`
}

// RunSimulation 执行合成人口模拟
// 功能：按对数正态分布抽取收入，逐人计算两种税制并汇总
// 参数：c-取消控制
// 返回：人口汇总；计算失败或被取消时返回错误
// 算法说明：
// 1. 使用simulation.seed初始化随机数引擎，抽取simulation.count个收入
// 2. 收入四舍五入到卢比后调用ComputeAll并发计算
// 3. 统计各税制胜出人数、总税负与均值、总节省额与附加费比例
func (ctx *Context) RunSimulation(c context.Context) (*PopulationSummary, error) {
	sim := ctx.runtimeConfig.All.Simulation
	engine := randengine.New(sim.Seed)
	incomes := lo.Map(engine.Sample(sim.Count, sim.Median, sim.Sigma), func(v float64, _ int) string {
		return decimal.NewFromFloat(v).Round(0).String()
	})
	log.Infof("[%s] simulating %d incomes (seed=%d median=%v sigma=%v)", ctx.job, sim.Count, sim.Seed, sim.Median, sim.Sigma)

	results, err := taxengine.ComputeAll(c, incomes, ctx.runtimeConfig.C.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "simulate population")
	}
	s := summarize(results)
	s.Job = ctx.job
	s.Seed = sim.Seed
	s.MedianIncome = decimal.NewFromFloat(sim.Median).StringFixed(2)
	return s, nil
}

func summarize(results []*taxengine.Computation) *PopulationSummary {
	s := &PopulationSummary{Count: len(results)}
	totalNew, totalOld, savings := decimal.Zero, decimal.Zero, decimal.Zero
	var surcharged, zeroNew, zeroOld int
	for _, c := range results {
		switch c.Comparison.Winner {
		case taxengine.WinnerNew:
			s.PreferNew++
		case taxengine.WinnerOld:
			s.PreferOld++
		default:
			s.Tie++
		}
		totalNew = totalNew.Add(c.New.FinalLiability)
		totalOld = totalOld.Add(c.Old.FinalLiability)
		savings = savings.Add(c.Comparison.Savings)
		if c.New.Surcharge.IsPositive() || c.Old.Surcharge.IsPositive() {
			surcharged++
		}
		if c.New.FinalLiability.IsZero() {
			zeroNew++
		}
		if c.Old.FinalLiability.IsZero() {
			zeroOld++
		}
	}
	s.New = newRegimeSummary(totalNew, len(results))
	s.Old = newRegimeSummary(totalOld, len(results))
	s.TotalSavings = savings.StringFixed(2)
	s.SurchargeShare = share(surcharged, len(results))
	s.ZeroTaxShareNew = share(zeroNew, len(results))
	s.ZeroTaxShareOld = share(zeroOld, len(results))
	return s
}

func newRegimeSummary(total decimal.Decimal, n int) RegimeSummary {
	mean := decimal.Zero
	if n > 0 {
		mean = total.Div(decimal.NewFromInt(int64(n)))
	}
	return RegimeSummary{Total: total.StringFixed(2), Mean: mean.StringFixed(2)}
}

func share(k, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(k) / float64(n)
}
