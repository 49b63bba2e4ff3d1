package taxengine

import "github.com/shopspring/decimal"

// 扣除、附加税与教育税常量（单位：卢比）
var (
	// StandardDeduction 标准扣除额，从总收入中直接扣减，不做下限截断
	StandardDeduction = decimal.NewFromInt(75000)

	// CessRate 健康与教育附加税率（4%），作用于 税额+附加费
	CessRate = decimal.New(4, -2)
)

// NewSchedule FY 2025-26 新税制
// 切分点：[0, 4L, 8L, 12L, 16L, 20L, 24L]，税率：[0, 5, 10, 15, 20, 25, 30]
// 应税收入低于12L整体免税，高于时自顶向下逐档切分
var NewSchedule = &Schedule{
	Regime:      RegimeNew,
	Label:       "Latest New Tax Regime (FY 2025-2026)",
	Method:      MethodCarve,
	RebateLimit: decimal.NewFromInt(1200000),
	RebateLabel: "Taxable income below ₹12,00,000 – No tax",
	Slabs: []Slab{
		{Cutoff: decimal.NewFromInt(0), RatePercent: 0, Label: "₹0 to ₹4,00,000"},
		{Cutoff: decimal.NewFromInt(400000), RatePercent: 5, Label: "₹4,00,001 to ₹8,00,000"},
		{Cutoff: decimal.NewFromInt(800000), RatePercent: 10, Label: "₹8,00,001 to ₹12,00,000"},
		{Cutoff: decimal.NewFromInt(1200000), RatePercent: 15, Label: "₹12,00,001 to ₹16,00,000"},
		{Cutoff: decimal.NewFromInt(1600000), RatePercent: 20, Label: "₹16,00,001 to ₹20,00,000"},
		{Cutoff: decimal.NewFromInt(2000000), RatePercent: 25, Label: "₹20,00,001 to ₹24,00,000"},
		{Cutoff: decimal.NewFromInt(2400000), RatePercent: 30, Label: "Above ₹24,00,000"},
	},
}

// OldSchedule FY 2024-25 税制（逐档边际计算）
// 切分点：[0, 3L, 7L, 10L, 12L, 15L]，税率：[0, 5, 10, 15, 20, 30]
// 应税收入低于7L整体免税，否则六档全部输出
var OldSchedule = &Schedule{
	Regime:      RegimeOld,
	Label:       "Existing New Tax Regime (FY 2024-2025)",
	Method:      MethodBand,
	RebateLimit: decimal.NewFromInt(700000),
	RebateLabel: "Taxable income below ₹7,00,000 – No tax",
	Slabs: []Slab{
		{Cutoff: decimal.NewFromInt(0), RatePercent: 0, Label: "Up to ₹3,00,000: No tax"},
		{Cutoff: decimal.NewFromInt(300000), RatePercent: 5, Label: "₹3,00,001 to ₹7,00,000: 5%"},
		{Cutoff: decimal.NewFromInt(700000), RatePercent: 10, Label: "₹7,00,001 to ₹10,00,000: 10%"},
		{Cutoff: decimal.NewFromInt(1000000), RatePercent: 15, Label: "₹10,00,001 to ₹12,00,000: 15%"},
		{Cutoff: decimal.NewFromInt(1200000), RatePercent: 20, Label: "₹12,00,001 to ₹15,00,000: 20%"},
		{Cutoff: decimal.NewFromInt(1500000), RatePercent: 30, Label: "Above ₹15,00,000: 30%"},
	},
}

// 附加费档位（按应税收入），边界运算符保持原样：首档为 <，其余为 <=
var (
	surchargeFloor    = decimal.NewFromInt(5000000)
	surchargeTier1Cap = decimal.NewFromInt(10000000)
	surchargeTier2Cap = decimal.NewFromInt(20000000)
	surchargeTier3Cap = decimal.NewFromInt(50000000)
)
