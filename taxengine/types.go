package taxengine

import "github.com/shopspring/decimal"

// BreakdownLine 单个税档对税额的贡献
type BreakdownLine struct {
	Description   string          `json:"description"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"` // 落在该档内的收入，非负
	RatePercent   int64           `json:"ratePercent"`   // 边际税率（百分比）
	TaxAmount     decimal.Decimal `json:"taxAmount"`     // TaxableAmount * RatePercent / 100
}

// RegimeResult 一种税制下的完整计算结果
type RegimeResult struct {
	Regime               Regime          `json:"regime"`
	Label                string          `json:"label"`
	PreSurchargeTax      decimal.Decimal `json:"preSurchargeTax"`
	SurchargeRatePercent int64           `json:"surchargeRatePercent"`
	Surcharge            decimal.Decimal `json:"surcharge"`
	Cess                 decimal.Decimal `json:"cess"`
	FinalLiability       decimal.Decimal `json:"finalLiability"`
	Breakdown            []BreakdownLine `json:"breakdown"`
}

// Computation 一次计算的全部输出，生成后不再修改
type Computation struct {
	GrossIncome       decimal.Decimal `json:"grossIncome"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	NetTaxableIncome  decimal.Decimal `json:"netTaxableIncome"`
	New               RegimeResult    `json:"newRegime"`
	Old               RegimeResult    `json:"oldRegime"`
	Comparison        Comparison      `json:"comparison"`
}

// Result 按税制取结果
func (c *Computation) Result(regime Regime) RegimeResult {
	if regime == RegimeOld {
		return c.Old
	}
	return c.New
}
