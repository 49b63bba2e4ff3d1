package taxengine

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Regime 税制标识
type Regime string

const (
	RegimeNew Regime = "new" // FY 2025-26
	RegimeOld Regime = "old" // FY 2024-25
)

// Method 税档分配方式
type Method int

const (
	// MethodCarve 自顶向下切分：从最高切分点开始，把超出部分划入该档，剩余额降到切分点后继续
	MethodCarve Method = iota
	// MethodBand 逐档截取：每档取 max(min(收入, 上界) - 下界, 0)，所有档位都输出
	MethodBand
)

// Slab 一个税档，覆盖 [Cutoff, 下一档Cutoff)，最后一档无上界
type Slab struct {
	Cutoff      decimal.Decimal
	RatePercent int64
	Label       string
}

// Schedule 一套完整的税档方案
type Schedule struct {
	Regime      Regime
	Label       string
	Method      Method
	RebateLimit decimal.Decimal // 应税收入严格小于该值时整体免税
	RebateLabel string
	Slabs       []Slab // 按Cutoff升序，首档Cutoff为0
}

// Apply 计算应税收入在该税制下的分档明细与附加费前税额
// 功能：根据免税门槛与分配方式生成分档明细
// 参数：net-扣除后的应税收入（可以为负）
// 返回：按税档升序排列的明细，以及明细税额之和
// 算法说明：
// 1. net < RebateLimit：输出单行零税明细，应税额截断到0
// 2. 否则按Method切分或逐档截取
// 3. 税额为各行税额之和
func (s *Schedule) Apply(net decimal.Decimal) ([]BreakdownLine, decimal.Decimal) {
	if net.LessThan(s.RebateLimit) {
		return []BreakdownLine{{
			Description:   s.RebateLabel,
			TaxableAmount: decimal.Max(net, decimal.Zero),
			RatePercent:   0,
			TaxAmount:     decimal.Zero,
		}}, decimal.Zero
	}

	var lines []BreakdownLine
	switch s.Method {
	case MethodCarve:
		lines = carveSlabs(net, s.Slabs)
	default:
		lines = bandSlabs(net, s.Slabs)
	}
	tax := lo.Reduce(lines, func(sum decimal.Decimal, line BreakdownLine, _ int) decimal.Decimal {
		return sum.Add(line.TaxAmount)
	}, decimal.Zero)
	return lines, tax
}

// carveSlabs 自顶向下切分
// 从高到低处理每个切分点，超过部分按该档税率计税，然后把剩余额降到切分点；
// 最低档总是输出（即使未被切分到），结果翻转为升序
func carveSlabs(income decimal.Decimal, slabs []Slab) []BreakdownLine {
	lines := make([]BreakdownLine, 0, len(slabs))
	remaining := income
	for i := len(slabs) - 1; i >= 1; i-- {
		cutoff := slabs[i].Cutoff
		if remaining.GreaterThan(cutoff) {
			lines = append(lines, newLine(slabs[i], remaining.Sub(cutoff)))
			remaining = cutoff
		}
	}
	lines = append(lines, newLine(slabs[0], decimal.Max(remaining, decimal.Zero)))
	return lo.Reverse(lines)
}

// bandSlabs 逐档截取，每档应税额 = max(min(income, upper) - lower, 0)
func bandSlabs(income decimal.Decimal, slabs []Slab) []BreakdownLine {
	lines := make([]BreakdownLine, 0, len(slabs))
	for i, slab := range slabs {
		upper := income
		if i+1 < len(slabs) {
			upper = decimal.Min(income, slabs[i+1].Cutoff)
		}
		lines = append(lines, newLine(slab, decimal.Max(upper.Sub(slab.Cutoff), decimal.Zero)))
	}
	return lines
}

func newLine(slab Slab, taxable decimal.Decimal) BreakdownLine {
	return BreakdownLine{
		Description:   slab.Label,
		TaxableAmount: taxable,
		RatePercent:   slab.RatePercent,
		TaxAmount:     percentOf(taxable, slab.RatePercent),
	}
}

// percentOf amount * rate / 100，移位保证精确
func percentOf(amount decimal.Decimal, ratePercent int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(ratePercent)).Shift(-2)
}
