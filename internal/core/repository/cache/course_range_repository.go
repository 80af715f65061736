package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
)

// keyDateLayout - формат дат в ключах кеша
const keyDateLayout = "2006.01.02"

type CourseRangeRepository struct {
	courseRanges      repository.CourseRangeRepository
	crossCourseRanges repository.CrossCourseRangeRepository
	store             Store
	ttl               time.Duration
}

// NewCourseRangeRepository оборачивает репозитории курсов и кросскурсов кешем.
// TTL задается в секундах и не может быть отрицательным.
func NewCourseRangeRepository(
	courseRanges repository.CourseRangeRepository,
	crossCourseRanges repository.CrossCourseRangeRepository,
	store Store,
	ttlSeconds int,
) (*CourseRangeRepository, error) {
	ttl, err := ttlFromSeconds(ttlSeconds)
	if err != nil {
		return nil, err
	}

	return &CourseRangeRepository{
		courseRanges:      courseRanges,
		crossCourseRanges: crossCourseRanges,
		store:             store,
		ttl:               ttl,
	}, nil
}

func (r *CourseRangeRepository) GetCourseRange(ctx context.Context, currency models.Currency, from, to time.Time) (*models.CourseRange, error) {
	key := fmt.Sprintf(
		"course-%s-%s-%s",
		currency.ID(),
		from.Format(keyDateLayout),
		to.Format(keyDateLayout),
	)

	return fetchThrough(ctx, r.store, key, r.ttl, func(ctx context.Context) (*models.CourseRange, error) {
		return r.courseRanges.GetCourseRange(ctx, currency, from, to)
	})
}

func (r *CourseRangeRepository) GetCrossCourseRange(ctx context.Context, baseCurrency, currency models.Currency, from, to time.Time) (*models.CourseRange, error) {
	key := fmt.Sprintf(
		"cross-course-%s-%s-%s-%s",
		baseCurrency.ID(),
		currency.ID(),
		from.Format(keyDateLayout),
		to.Format(keyDateLayout),
	)

	return fetchThrough(ctx, r.store, key, r.ttl, func(ctx context.Context) (*models.CourseRange, error) {
		return r.crossCourseRanges.GetCrossCourseRange(ctx, baseCurrency, currency, from, to)
	})
}
