package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ryabkov/cbrcourse/pkg/moneyops"
	"github.com/shopspring/decimal"
)

// CourseRange - упорядоченный по датам диапазон курсов одной валюты.
// Все производные структуры (индекс по дате, границы, разницы с предыдущим
// торговым днем) рассчитываются один раз при создании и не меняются.
type CourseRange struct {
	courses []Course

	// byDate - индекс курсов по дате в формате Y-m-d.
	// При совпадении дат более поздний элемент перезаписывает ранний.
	byDate map[string]Course

	firstDate time.Time
	lastDate  time.Time

	// differences - разницы с предыдущим торговым днем, ключ - дата.
	// У первого дня диапазона разницы нет.
	differences map[string]decimal.Decimal
}

// NewCourseRange собирает диапазон из неупорядоченного набора курсов
func NewCourseRange(courses []Course) (*CourseRange, error) {
	if len(courses) == 0 {
		return nil, ErrEmptyCourseRange
	}

	for _, course := range courses {
		if !course.isValid() {
			return nil, ErrInvalidCourseRangeItem
		}
	}

	r := &CourseRange{
		courses:     make([]Course, len(courses)),
		byDate:      make(map[string]Course, len(courses)),
		differences: make(map[string]decimal.Decimal, len(courses)),
	}
	copy(r.courses, courses)

	sort.SliceStable(r.courses, func(i, j int) bool {
		return r.courses[i].Date().Before(r.courses[j].Date())
	})

	for _, course := range r.courses {
		r.byDate[course.Date().Format(dateLayout)] = course
	}

	r.firstDate = r.courses[0].Date()
	r.lastDate = r.courses[len(r.courses)-1].Date()

	for i := 1; i < len(r.courses); i++ {
		current := r.courses[i]
		prev := r.courses[i-1]
		r.differences[current.Date().Format(dateLayout)] = moneyops.Sub(current.Value(), prev.Value())
	}

	return r, nil
}

// Courses возвращает курсы в хронологическом порядке
func (r *CourseRange) Courses() []Course {
	courses := make([]Course, len(r.courses))
	copy(courses, r.courses)
	return courses
}

func (r *CourseRange) FirstDate() time.Time {
	return r.firstDate
}

func (r *CourseRange) LastDate() time.Time {
	return r.lastDate
}

// GetCourseByDate возвращает курс за указанную дату.
// За выходные и праздники данных нет - это ожидаемая ошибка ErrNoDataForDate.
func (r *CourseRange) GetCourseByDate(date time.Time) (Course, error) {
	course, ok := r.byDate[normalizeDate(date).Format(dateLayout)]
	if !ok {
		return Course{}, fmt.Errorf("%w: %s", ErrNoDataForDate, date.Format(dateLayout))
	}

	return course, nil
}

// DifferenceWithPreviousDay возвращает разницу курса с предыдущим торговым днем
func (r *CourseRange) DifferenceWithPreviousDay(date time.Time) (decimal.Decimal, error) {
	difference, ok := r.differences[normalizeDate(date).Format(dateLayout)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no previous trading day for %s", ErrNoDataForDate, date.Format(dateLayout))
	}

	return difference, nil
}

type courseRangeJSON struct {
	Courses []Course `json:"courses"`
}

func (r *CourseRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(courseRangeJSON{Courses: r.courses})
}

// UnmarshalJSON восстанавливает диапазон через конструктор,
// чтобы индексы и разницы пересчитались заново
func (r *CourseRange) UnmarshalJSON(data []byte) error {
	var raw courseRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	restored, err := NewCourseRange(raw.Courses)
	if err != nil {
		return err
	}

	*r = *restored
	return nil
}
