package taxengine

import "github.com/shopspring/decimal"

// Compute 计算一笔年度总收入在两种税制下的应纳税额
// 功能：扣除 → 分档 → 附加费 → 教育税 → 比较，一次性返回不可变结果
// 参数：grossIncome-年度总收入，必须非负
// 返回：完整计算结果；收入为负或超出位数范围时返回 *InvalidIncomeError 且不返回任何结果
// 算法说明：
// 1. 应税收入 = 总收入 - 标准扣除（可以为负，由各税制的免税分支处理）
// 2. 两种税制在同一应税收入上独立计算
// 3. 附加费只依赖 (应税收入, 税额)，教育税作用于 税额+附加费
// 4. 比较两种税制的最终税负
func Compute(grossIncome decimal.Decimal) (*Computation, error) {
	if !inRange(grossIncome) {
		return nil, &InvalidIncomeError{Input: shortForm(grossIncome), Reason: "out of range"}
	}
	if grossIncome.IsNegative() {
		return nil, &InvalidIncomeError{Input: grossIncome.String(), Reason: "must not be negative"}
	}
	net := grossIncome.Sub(StandardDeduction)
	newResult := evaluate(NewSchedule, net)
	oldResult := evaluate(OldSchedule, net)
	return &Computation{
		GrossIncome:       grossIncome,
		StandardDeduction: StandardDeduction,
		NetTaxableIncome:  net,
		New:               newResult,
		Old:               oldResult,
		Comparison:        Compare(newResult, oldResult),
	}, nil
}

// ComputeString 解析文本收入后计算
func ComputeString(text string) (*Computation, error) {
	income, err := ParseIncome(text)
	if err != nil {
		return nil, err
	}
	return Compute(income)
}

// evaluate 单一税制：分档税额、附加费、教育税与最终税负
func evaluate(s *Schedule, net decimal.Decimal) RegimeResult {
	lines, tax := s.Apply(net)
	rate := SurchargeRate(net)
	surcharge := percentOf(tax, rate)
	cess := Cess(tax, surcharge)
	return RegimeResult{
		Regime:               s.Regime,
		Label:                s.Label,
		PreSurchargeTax:      tax,
		SurchargeRatePercent: rate,
		Surcharge:            surcharge,
		Cess:                 cess,
		FinalLiability:       tax.Add(surcharge).Add(cess),
		Breakdown:            lines,
	}
}
