// Package moneyops содержит точную десятичную арифметику для работы с курсами валют.
// Все операции выполняются с фиксированной точностью в 4 знака после запятой,
// лишние знаки отбрасываются на каждом шаге, а не только в итоговом значении.
package moneyops

import "github.com/shopspring/decimal"

// Scale - количество знаков после запятой (десятитысячные)
const Scale = 4

func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Truncate(Scale)
}

func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Truncate(Scale)
}

func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Truncate(Scale)
}

// Div делит a на b. Деление на ноль не определено: вызывающий код обязан
// гарантировать ненулевой делитель (курсы валют никогда не публикуются нулевыми).
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.Div(b).Truncate(Scale)
}

// Compare сравнивает значения, усеченные до рабочей точности.
// Возвращает -1, 0 или 1.
func Compare(a, b decimal.Decimal) int {
	return a.Truncate(Scale).Cmp(b.Truncate(Scale))
}

func Eq(a, b decimal.Decimal) bool {
	return Compare(a, b) == 0
}

func Gt(a, b decimal.Decimal) bool {
	return Compare(a, b) == 1
}

func Gte(a, b decimal.Decimal) bool {
	return Compare(a, b) != -1
}

func Lt(a, b decimal.Decimal) bool {
	return Compare(a, b) == -1
}

func Lte(a, b decimal.Decimal) bool {
	return Compare(a, b) != 1
}
