package models

import (
	"encoding/json"
	"time"

	"github.com/ryabkov/cbrcourse/pkg/moneyops"
	"github.com/shopspring/decimal"
)

// dateLayout - формат даты, по которому курсы индексируются внутри диапазона
const dateLayout = "2006-01-02"

// Course - курс одной валюты за один торговый день
type Course struct {
	date     time.Time
	currency Currency
	value    decimal.Decimal
}

// NewCourse создает курс валюты. Время внутри даты обнуляется,
// стоимость не может быть отрицательной.
func NewCourse(date time.Time, currency Currency, value decimal.Decimal) (Course, error) {
	if moneyops.Lt(value, decimal.Zero) {
		return Course{}, ErrNegativeCourseValue
	}

	return Course{date: normalizeDate(date), currency: currency, value: value}, nil
}

// NewCrossCourse рассчитывает кросскурс валюты через базовый курс.
// Обе котировки заданы относительно рубля, поэтому:
//
//	srcPrice  - за сколько исходной валюты можно купить один рубль
//	basePrice - за сколько базовой валюты можно купить один рубль
//
// Итог - стоимость исходной валюты, выраженная в базовой.
func NewCrossCourse(date time.Time, currency Currency, value decimal.Decimal, baseCourse Course) (Course, error) {
	srcPrice := moneyops.Div(decimal.NewFromInt(currency.Nominal()), value)
	basePrice := moneyops.Div(decimal.NewFromInt(baseCourse.Currency().Nominal()), baseCourse.Value())

	crossValue := moneyops.Div(basePrice, srcPrice)
	return NewCourse(date, currency, crossValue)
}

func (c Course) Date() time.Time {
	return c.date
}

func (c Course) Currency() Currency {
	return c.currency
}

func (c Course) Value() decimal.Decimal {
	return c.value
}

// isValid отличает собранный через конструктор курс от нулевого значения
func (c Course) isValid() bool {
	return !c.date.IsZero() && c.currency.nominal > 0
}

func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

type courseJSON struct {
	Date     string          `json:"date"`
	Currency Currency        `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

func (c Course) MarshalJSON() ([]byte, error) {
	return json.Marshal(courseJSON{
		Date:     c.date.Format(dateLayout),
		Currency: c.currency,
		Value:    c.value,
	})
}

func (c *Course) UnmarshalJSON(data []byte) error {
	var raw courseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return err
	}

	course, err := NewCourse(date, raw.Currency, raw.Value)
	if err != nil {
		return err
	}

	*c = course
	return nil
}
