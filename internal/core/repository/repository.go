package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/models"
)

var (
	// ErrCurrencyNotFound - валюта с указанным идентификатором не найдена в библиотеке
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrSourceUnavailable - не удалось получить данные из cbr.ru
	ErrSourceUnavailable = errors.New("rate source unavailable")
	// ErrDataIntegrity - источник отдал данные не по запрашиваемой валюте
	ErrDataIntegrity = errors.New("rate source returned data for a different currency")
)

// CurrencyRepository - библиотека валют
type CurrencyRepository interface {
	GetCurrencies(ctx context.Context) ([]models.Currency, error)
	GetCurrencyByID(ctx context.Context, id string) (models.Currency, error)
}

// CourseRangeRepository - курсы валюты за диапазон дат
type CourseRangeRepository interface {
	GetCourseRange(ctx context.Context, currency models.Currency, from, to time.Time) (*models.CourseRange, error)
}

// CrossCourseRangeRepository - кросскурсы валюты относительно базовой за диапазон дат
type CrossCourseRangeRepository interface {
	GetCrossCourseRange(ctx context.Context, baseCurrency, currency models.Currency, from, to time.Time) (*models.CourseRange, error)
}
