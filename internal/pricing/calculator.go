package pricing

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Calculator считает детализированную стоимость проживания.
// Ставки сборов задаются конфигурацией в процентах и хранятся в базисных
// пунктах; вся арифметика идёт в целых центах, чтобы исключить дрейф
// копеек на двоичных числах с плавающей точкой.
type Calculator struct {
	cleaningRateBps int64
	serviceRateBps  int64
}

// NewCalculator создает калькулятор со ставками сборов в процентах
// (например, 3.0 и 2.0).
func NewCalculator(cleaningFeePercent, serviceFeePercent float64) *Calculator {
	return &Calculator{
		cleaningRateBps: domain.BpsFromPercent(cleaningFeePercent),
		serviceRateBps:  domain.BpsFromPercent(serviceFeePercent),
	}
}

// Compute считает стоимость проживания по диапазону и цене за ночь.
// Оплачиваются только ночи (день выезда не тарифицируется). Каждый сбор
// округляется до цента независимо, затем суммируется итог.
func (c *Calculator) Compute(r domain.DateRange, nightlyRate domain.Money) (*domain.PriceBreakdown, error) {
	nights := r.Nights()
	if nights <= 0 {
		return nil, ErrInvalidRange
	}

	baseTotal := nightlyRate.MulNights(nights)
	cleaningFee := baseTotal.ApplyRateBps(c.cleaningRateBps)
	serviceFee := baseTotal.ApplyRateBps(c.serviceRateBps)

	return &domain.PriceBreakdown{
		Nights:      nights,
		BaseTotal:   baseTotal,
		CleaningFee: cleaningFee,
		ServiceFee:  serviceFee,
		GrandTotal:  baseTotal + cleaningFee + serviceFee,
	}, nil
}
