package models

import "errors"

var (
	// ErrInvalidNominal - номинал валюты должен быть больше 0
	ErrInvalidNominal = errors.New("currency nominal must be greater than 0")
	// ErrNegativeCourseValue - стоимость валюты не может быть меньше 0
	ErrNegativeCourseValue = errors.New("course value must not be negative")
	// ErrEmptyCourseRange - диапазон должен содержать данные хотя бы за одну дату
	ErrEmptyCourseRange = errors.New("course range must contain at least one course")
	// ErrInvalidCourseRangeItem - диапазон должен состоять только из валидных курсов
	ErrInvalidCourseRangeItem = errors.New("course range must consist of valid courses")
	// ErrNoDataForDate - за указанную дату нет данных по курсу
	ErrNoDataForDate = errors.New("no course data for date")
)
