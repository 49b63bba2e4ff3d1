package taxengine

import "github.com/shopspring/decimal"

// SurchargeRate 按应税收入确定附加费率（百分比）
// 档位：< 50L 为0；<= 1Cr 为10%；<= 2Cr 为15%；<= 5Cr 为25%；以上仍为25%
// 附加费按档位对整笔税额统一计征，不做边际减免
func SurchargeRate(netIncome decimal.Decimal) int64 {
	switch {
	case netIncome.LessThan(surchargeFloor):
		return 0
	case netIncome.LessThanOrEqual(surchargeTier1Cap):
		return 10
	case netIncome.LessThanOrEqual(surchargeTier2Cap):
		return 15
	case netIncome.LessThanOrEqual(surchargeTier3Cap):
		return 25
	default:
		return 25
	}
}

// Surcharge 计算附加费金额
func Surcharge(netIncome, tax decimal.Decimal) decimal.Decimal {
	return percentOf(tax, SurchargeRate(netIncome))
}

// Cess 计算健康与教育附加税：(税额 + 附加费) * CessRate
func Cess(tax, surcharge decimal.Decimal) decimal.Decimal {
	return tax.Add(surcharge).Mul(CessRate)
}
