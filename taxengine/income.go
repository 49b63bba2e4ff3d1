package taxengine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// 千分位、空白与货币符号在解析前移除
var incomeCleaner = strings.NewReplacer(
	",", "",
	"_", "",
	" ", "",
	"\u00a0", "", // 不换行空格
	"₹", "",
)

// 收入的有效位数范围：整数部分最多15位（约一亿亿卢比），小数部分最多8位
const (
	maxIncomeDigits   = 15
	maxFractionDigits = 8
)

// 可选的货币前缀，按长度从长到短匹配
var currencyPrefixes = []string{"inr", "rs.", "rs"}

// ParseIncome 解析文本形式的年度总收入
// 功能：把用户输入的收入字符串转换为精确的十进制数
// 参数：text-原始输入，允许 "20,00,000"、"₹ 5,00,000"、"Rs. 1200000" 等写法
// 返回：收入金额；非数字或为负时返回 *InvalidIncomeError
// 算法说明：
// 1. 去除首尾空白与货币前缀
// 2. 去除千分位分隔符、空格与₹符号
// 3. 整串按十进制解析，不接受 "12abc" 这类前缀数字
// 4. 负数与超出位数范围（如 "1e400000000"）的值视为无效
func ParseIncome(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = incomeCleaner.Replace(s)
	if s == "" {
		return decimal.Zero, &InvalidIncomeError{Input: text, Reason: "empty value"}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &InvalidIncomeError{Input: text, Reason: "not a number", Err: err}
	}
	if v.IsNegative() {
		return decimal.Zero, &InvalidIncomeError{Input: text, Reason: "must not be negative"}
	}
	if !inRange(v) {
		return decimal.Zero, &InvalidIncomeError{Input: text, Reason: "out of range"}
	}
	return v, nil
}

// inRange 只看指数与系数位数，不展开数值本身
func inRange(v decimal.Decimal) bool {
	exp := int(v.Exponent())
	if exp < -maxFractionDigits || exp > maxIncomeDigits {
		return false
	}
	return v.NumDigits()+exp <= maxIncomeDigits
}

// shortForm 系数e指数形式，避免对超大指数调用String
func shortForm(v decimal.Decimal) string {
	return v.Coefficient().String() + "e" + strconv.Itoa(int(v.Exponent()))
}
