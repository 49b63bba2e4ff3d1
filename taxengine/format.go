package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianEnglish = language.MustParse("en-IN")

// 整数部分可按int64分组的上限（18位）
var maxGroupable = decimal.New(1, 18)

// FormatRupees 按印度数字分组（如 ₹19,25,000）格式化金额，最多保留两位小数
// 先以十进制舍入到分，整数部分交给en-IN打印器分组，小数部分直接取舍入后的数字
func FormatRupees(v decimal.Decimal) string {
	r := v.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	if !r.LessThan(maxGroupable) {
		return sign + "₹" + r.String()
	}
	text := message.NewPrinter(indianEnglish).Sprint(number.Decimal(r.IntPart()))
	if _, frac, ok := strings.Cut(r.String(), "."); ok {
		text += "." + frac
	}
	return sign + "₹" + text
}
