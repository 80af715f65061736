package models_test

import (
	"testing"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurrency(t *testing.T, id, name string, nominal int64) models.Currency {
	t.Helper()
	currency, err := models.NewCurrency(id, name, nominal)
	require.NoError(t, err)
	return currency
}

func mustCourse(t *testing.T, date time.Time, currency models.Currency, value string) models.Course {
	t.Helper()
	course, err := models.NewCourse(date, currency, decimal.RequireFromString(value))
	require.NoError(t, err)
	return course
}

func TestNewCourseNormalizesDate(t *testing.T) {
	usd := mustCurrency(t, "R01235", "Доллар США", 1)
	date := time.Date(2021, 3, 12, 15, 42, 7, 100, time.UTC)

	course, err := models.NewCourse(date, usd, decimal.RequireFromString("75.50"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC), course.Date())
}

func TestNewCourseNegativeValue(t *testing.T) {
	usd := mustCurrency(t, "R01235", "Доллар США", 1)

	_, err := models.NewCourse(time.Now(), usd, decimal.RequireFromString("-0.0001"))
	assert.ErrorIs(t, err, models.ErrNegativeCourseValue)
}

func TestNewCrossCourse(t *testing.T) {
	date := time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC)
	usd := mustCurrency(t, "R01235", "Доллар США", 1)
	eur := mustCurrency(t, "R01239", "Евро", 1)

	baseCourse := mustCourse(t, date, usd, "75.50")

	cross, err := models.NewCrossCourse(date, eur, decimal.RequireFromString("89.56"), baseCourse)
	require.NoError(t, err)

	assert.Equal(t, "1.1891", cross.Value().StringFixed(4))
	assert.Equal(t, eur, cross.Currency())
	assert.Equal(t, date, cross.Date())
}

func TestNewCrossCourseWithNominal(t *testing.T) {
	date := time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC)
	usd := mustCurrency(t, "R01235", "Доллар США", 1)
	jpy := mustCurrency(t, "R01820", "Японская иена", 100)

	baseCourse := mustCourse(t, date, usd, "75.50")

	cross, err := models.NewCrossCourse(date, jpy, decimal.RequireFromString("15.99"), baseCourse)
	require.NoError(t, err)

	assert.Equal(t, "0.0021", cross.Value().StringFixed(4))
}

func TestNewCrossCourseSameCurrency(t *testing.T) {
	date := time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC)
	usd := mustCurrency(t, "R01235", "Доллар США", 1)

	baseCourse := mustCourse(t, date, usd, "75.50")

	cross, err := models.NewCrossCourse(date, usd, decimal.RequireFromString("75.50"), baseCourse)
	require.NoError(t, err)

	assert.True(t, cross.Value().Equal(decimal.NewFromInt(1)), "got %s", cross.Value())
}
