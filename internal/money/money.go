// Package money 提供以最小货币单位（整数分）为基础的金额运算与格式化。
// 存储与计算一律使用整数，浮点数只出现在展示边界。
package money

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const minorUnitScale = 100

// 金额符号类型
const (
	TypePositive = "positive"
	TypeNegative = "negative"
	TypeNil      = "nil"
)

// Info 金额展示信息
type Info struct {
	Raw            float64 `json:"raw"`
	Formatted      string  `json:"formatted"`
	FormattedMinus string  `json:"formatted_minus"`
	Type           string  `json:"type"`
}

// ToMinorUnits 将小数金额转换为最小单位整数，四舍五入（half-up）。
// 转换经由 decimal 的十进制最短表示，12.345 -> 1235、12.335 -> 1234。
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(minorUnitScale)).
		Round(0).
		IntPart()
}

// FromMinorUnits 将最小单位整数转换为小数金额。
// 对 ToMinorUnits 产出的任意整数满足往返律：ToMinorUnits(FromMinorUnits(m)) == m。
func FromMinorUnits(amount int64) float64 {
	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(minorUnitScale)).
		InexactFloat64()
}

// Format 格式化最小单位金额：千位分组、固定两位小数、符号后缀，负号保留。
// 例如 Format(-1234567890, "£") == "-12,345,678.90 £"。
func Format(amount int64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	units := amount / minorUnitScale
	cents := amount % minorUnitScale
	return fmt.Sprintf("%s%s.%02d %s", sign, humanize.Comma(units), cents, symbol)
}

// NewInfo 构建金额展示信息。formatted 与 formatted_minus 刻意保持一致，
// 负数不做额外的减号样式处理。
func NewInfo(amount int64, symbol string) Info {
	formatted := Format(amount, symbol)
	return Info{
		Raw:            FromMinorUnits(amount),
		Formatted:      formatted,
		FormattedMinus: formatted,
		Type:           typeOf(amount),
	}
}

func typeOf(amount int64) string {
	switch {
	case amount > 0:
		return TypePositive
	case amount < 0:
		return TypeNegative
	default:
		return TypeNil
	}
}
