package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
)

// DefaultLookbackDays - запас в календарных днях от запрошенной даты назад.
// В торговых днях есть перерывы, поэтому окно берется с запасом,
// чтобы в него гарантированно попал хотя бы один предыдущий торговый день.
const DefaultLookbackDays = 30

type CourseUsecase interface {
	GetCurrencies(ctx context.Context) ([]models.Currency, error)
	GetCurrencyByID(ctx context.Context, id string) (models.Currency, error)
	// GetDailyCourse возвращает курс валюты за дату и разницу с предыдущим
	// торговым днем. Пустой baseCurrencyID означает курс к рублю,
	// непустой - кросскурс к указанной базовой валюте.
	GetDailyCourse(ctx context.Context, date time.Time, currencyID, baseCurrencyID string) (models.DailyCourse, error)
}

type courseUsecase struct {
	currencies        repository.CurrencyRepository
	courseRanges      repository.CourseRangeRepository
	crossCourseRanges repository.CrossCourseRangeRepository
	lookbackDays      int
	log               logger.Logger
}

func NewCourseUsecase(
	currencies repository.CurrencyRepository,
	courseRanges repository.CourseRangeRepository,
	crossCourseRanges repository.CrossCourseRangeRepository,
	lookbackDays int,
	log logger.Logger,
) CourseUsecase {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	return &courseUsecase{
		currencies:        currencies,
		courseRanges:      courseRanges,
		crossCourseRanges: crossCourseRanges,
		lookbackDays:      lookbackDays,
		log:               log,
	}
}

func (uc *courseUsecase) GetCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := uc.currencies.GetCurrencies(ctx)
	if err != nil {
		uc.log.Error("Currency library lookup failed", logger.ErrorField("error", err))
		return nil, fmt.Errorf("get currencies: %w", err)
	}

	return currencies, nil
}

func (uc *courseUsecase) GetCurrencyByID(ctx context.Context, id string) (models.Currency, error) {
	currency, err := uc.currencies.GetCurrencyByID(ctx, id)
	if err != nil {
		uc.log.Warn("Currency lookup failed",
			logger.StringField("currency_id", id),
			logger.ErrorField("error", err))
		return models.Currency{}, fmt.Errorf("get currency: %w", err)
	}

	return currency, nil
}

func (uc *courseUsecase) GetDailyCourse(ctx context.Context, date time.Time, currencyID, baseCurrencyID string) (models.DailyCourse, error) {
	uc.logStart(date, currencyID, baseCurrencyID)

	currency, err := uc.resolveCurrency(ctx, currencyID)
	if err != nil {
		return models.DailyCourse{}, err
	}

	var baseCurrency *models.Currency
	if baseCurrencyID != "" {
		resolved, err := uc.resolveCurrency(ctx, baseCurrencyID)
		if err != nil {
			return models.DailyCourse{}, err
		}
		baseCurrency = &resolved
	}

	courseRange, err := uc.getCourseRange(ctx, date, currency, baseCurrency)
	if err != nil {
		return models.DailyCourse{}, err
	}

	course, err := courseRange.GetCourseByDate(date)
	if err != nil {
		return models.DailyCourse{}, fmt.Errorf("course for %s: %w", currencyID, err)
	}

	difference, err := courseRange.DifferenceWithPreviousDay(date)
	if err != nil {
		return models.DailyCourse{}, fmt.Errorf("difference for %s: %w", currencyID, err)
	}

	return models.DailyCourse{Value: course.Value(), PreviousDayDifference: difference}, nil
}

func (uc *courseUsecase) logStart(date time.Time, currencyID, baseCurrencyID string) {
	uc.log.Info("Getting daily course",
		logger.TimeField("date", date),
		logger.StringField("currency_id", currencyID),
		logger.StringField("base_currency_id", baseCurrencyID))
}

// resolveCurrency превращает "валюта не найдена" в ошибку некорректного запроса:
// идентификатор пришел от вызывающей стороны
func (uc *courseUsecase) resolveCurrency(ctx context.Context, currencyID string) (models.Currency, error) {
	currency, err := uc.currencies.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, repository.ErrCurrencyNotFound) {
			uc.log.Warn("Unknown currency requested", logger.StringField("currency_id", currencyID))
			return models.Currency{}, fmt.Errorf("%w: currency %s not found", ErrInvalidRequest, currencyID)
		}

		uc.log.Error("Currency lookup failed",
			logger.StringField("currency_id", currencyID),
			logger.ErrorField("error", err))
		return models.Currency{}, fmt.Errorf("resolve currency: %w", err)
	}

	return currency, nil
}

func (uc *courseUsecase) getCourseRange(ctx context.Context, date time.Time, currency models.Currency, baseCurrency *models.Currency) (*models.CourseRange, error) {
	to := date
	from := date.AddDate(0, 0, -uc.lookbackDays)

	if baseCurrency == nil {
		courseRange, err := uc.courseRanges.GetCourseRange(ctx, currency, from, to)
		if err != nil {
			uc.log.Error("Course range fetch failed",
				logger.StringField("currency_id", currency.ID()),
				logger.ErrorField("error", err))
			return nil, fmt.Errorf("get course range: %w", err)
		}
		return courseRange, nil
	}

	courseRange, err := uc.crossCourseRanges.GetCrossCourseRange(ctx, *baseCurrency, currency, from, to)
	if err != nil {
		uc.log.Error("Cross course range fetch failed",
			logger.StringField("currency_id", currency.ID()),
			logger.StringField("base_currency_id", baseCurrency.ID()),
			logger.ErrorField("error", err))
		return nil, fmt.Errorf("get cross course range: %w", err)
	}

	return courseRange, nil
}
