// Package freezing - расчет заморозки средств по RUB выплатам.
// Округления детерминированные: курс вниз до сотых, суммы к резервированию
// вверх до сотых, чтобы замороженного всегда хватало на покрытие фиатного
// обязательства.
package freezing

import "github.com/shopspring/decimal"

type RateOperation string

const (
	RatePlus  RateOperation = "PLUS"
	RateMinus RateOperation = "MINUS"
)

// CeilUp2 - округление вверх до 2 знаков после запятой
func CeilUp2(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).RoundCeil(2).Float64()
	return f
}

// FloorDown2 - округление вниз до 2 знаков после запятой
func FloorDown2(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).RoundFloor(2).Float64()
	return f
}

// AdjustedRate - курс мерчанта, скорректированный на процент ККК
// вверх или вниз, округлённый вниз до сотых
func AdjustedRate(merchantRate, kkkPercent float64, op RateOperation) float64 {
	rate := decimal.NewFromFloat(merchantRate)
	k := decimal.NewFromFloat(kkkPercent).Div(decimal.NewFromInt(100))
	if op == RatePlus {
		rate = rate.Mul(decimal.NewFromInt(1).Add(k))
	} else {
		rate = rate.Mul(decimal.NewFromInt(1).Sub(k))
	}
	f, _ := rate.RoundFloor(2).Float64()
	return f
}

// FrozenAmount - сколько USDT заморозить под рублёвую сумму
func FrozenAmount(amountRub, adjustedRate float64) float64 {
	f, _ := decimal.NewFromFloat(amountRub).
		Div(decimal.NewFromFloat(adjustedRate)).
		RoundCeil(2).Float64()
	return f
}

// Commission - комиссия в USDT от замороженной суммы
func Commission(frozenAmount, feePercent float64) float64 {
	f, _ := decimal.NewFromFloat(frozenAmount).
		Mul(decimal.NewFromFloat(feePercent)).
		Div(decimal.NewFromInt(100)).
		RoundCeil(2).Float64()
	return f
}

type Params struct {
	AdjustedRate float64
	FrozenAmount float64
	Commission   float64
	Total        float64
}

// CalcParams - полный расчет параметров заморозки для выплаты
func CalcParams(amountRub, merchantRate, kkkPercent, feePercent float64, op RateOperation) Params {
	rate := AdjustedRate(merchantRate, kkkPercent, op)
	frozen := FrozenAmount(amountRub, rate)
	commission := Commission(frozen, feePercent)
	return Params{
		AdjustedRate: rate,
		FrozenAmount: frozen,
		Commission:   commission,
		Total:        frozen + commission,
	}
}

// TraderProfit - прибыль трейдера при успешном завершении:
// (заморожено - фактически потрачено) + комиссия. Отрицательной не бывает,
// проскальзывание курса поглощает платформа.
func TraderProfit(frozenAmount, commission, amountRub, actualRate float64) float64 {
	actualSpent := FrozenAmount(amountRub, actualRate)
	profit := frozenAmount - actualSpent + commission
	if profit < 0 {
		return 0
	}
	return profit
}
