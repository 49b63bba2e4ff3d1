package taxengine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Winner 最终税负较低的一方
type Winner string

const (
	WinnerNew Winner = "new"
	WinnerOld Winner = "old"
	WinnerTie Winner = "tie"
)

// Comparison 两种税制最终税负的比较结果
type Comparison struct {
	Winner  Winner          `json:"winner"`
	Savings decimal.Decimal `json:"savings"` // 非负
	Message string          `json:"message"`
}

// Compare 比较两种税制的最终税负，十进制运算下相等判断是精确的
func Compare(newResult, oldResult RegimeResult) Comparison {
	switch cmp := newResult.FinalLiability.Cmp(oldResult.FinalLiability); {
	case cmp < 0:
		savings := oldResult.FinalLiability.Sub(newResult.FinalLiability)
		return Comparison{
			Winner:  WinnerNew,
			Savings: savings,
			Message: fmt.Sprintf("%s will save you %s compared to the %s.",
				newResult.Label, FormatRupees(savings), shortLabel(oldResult)),
		}
	case cmp > 0:
		savings := newResult.FinalLiability.Sub(oldResult.FinalLiability)
		return Comparison{
			Winner:  WinnerOld,
			Savings: savings,
			Message: fmt.Sprintf("%s will save you %s compared to the %s.",
				oldResult.Label, FormatRupees(savings), shortLabel(newResult)),
		}
	default:
		return Comparison{
			Winner:  WinnerTie,
			Savings: decimal.Zero,
			Message: "Both methods yield the same final tax liability.",
		}
	}
}

// shortLabel 去掉财年后缀的税制名称
func shortLabel(r RegimeResult) string {
	if r.Regime == RegimeOld {
		return "Existing New Tax Regime"
	}
	return "Latest New Tax Regime"
}
