package cbr

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
	"github.com/shopspring/decimal"
)

// recordDateLayout - формат дат в атрибутах записей XML_dynamic.asp
const recordDateLayout = "02.01.2006"

// dynamicDocument - ответ XML_dynamic.asp
type dynamicDocument struct {
	XMLName xml.Name        `xml:"ValCurs"`
	Records []dynamicRecord `xml:"Record"`
}

type dynamicRecord struct {
	ID      string `xml:"Id,attr"`
	Date    string `xml:"Date,attr"`
	Nominal int64  `xml:"Nominal"`
	Value   string `xml:"Value"`
}

type CourseRangeRepository struct {
	client  *http.Client
	baseURL string
	log     logger.Logger
}

// NewCourseRangeRepository создает репозиторий курсов поверх cbr.ru.
// Возвращаемое значение реализует и обычные, и кросскурсовые диапазоны.
func NewCourseRangeRepository(client *http.Client, baseURL string, log logger.Logger) *CourseRangeRepository {
	return &CourseRangeRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (r *CourseRangeRepository) GetCourseRange(ctx context.Context, currency models.Currency, from, to time.Time) (*models.CourseRange, error) {
	url := fmt.Sprintf(
		"%s/scripts/XML_dynamic.asp?date_req1=%s&date_req2=%s&VAL_NM_RQ=%s",
		r.baseURL,
		from.Format(requestDateLayout),
		to.Format(requestDateLayout),
		currency.ID(),
	)

	r.log.Debug("Fetching course range",
		logger.StringField("currency_id", currency.ID()),
		logger.StringField("url", url))

	body, err := fetch(ctx, r.client, url)
	if err != nil {
		return nil, fmt.Errorf("fetch course range: %w", err)
	}

	return parseCourseRange(body, currency)
}

// GetCrossCourseRange получает кросскурс двумя запросами за одинаковое окно дат:
// по базовой и по исходной валюте, после чего сводит курсы по датам.
func (r *CourseRangeRepository) GetCrossCourseRange(ctx context.Context, baseCurrency, currency models.Currency, from, to time.Time) (*models.CourseRange, error) {
	baseRange, err := r.GetCourseRange(ctx, baseCurrency, from, to)
	if err != nil {
		return nil, err
	}

	srcRange, err := r.GetCourseRange(ctx, currency, from, to)
	if err != nil {
		return nil, err
	}

	srcCourses := srcRange.Courses()
	crossCourses := make([]models.Course, 0, len(srcCourses))
	for _, srcCourse := range srcCourses {
		baseCourse, err := baseRange.GetCourseByDate(srcCourse.Date())
		if err != nil {
			return nil, fmt.Errorf("base currency %s: %w", baseCurrency.ID(), err)
		}

		crossCourse, err := models.NewCrossCourse(srcCourse.Date(), srcCourse.Currency(), srcCourse.Value(), baseCourse)
		if err != nil {
			return nil, fmt.Errorf("cross course for %s: %w", srcCourse.Date().Format(recordDateLayout), err)
		}

		crossCourses = append(crossCourses, crossCourse)
	}

	return models.NewCourseRange(crossCourses)
}

func parseCourseRange(body []byte, currency models.Currency) (*models.CourseRange, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charsetReader

	var document dynamicDocument
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: decoding course range: %v", repository.ErrSourceUnavailable, err)
	}

	courses := make([]models.Course, 0, len(document.Records))
	for _, record := range document.Records {
		if record.ID == "" {
			continue
		}

		// принадлежность записи проверяется до остальных полей
		if record.ID != currency.ID() {
			return nil, fmt.Errorf("%w: requested %s, got %s", repository.ErrDataIntegrity, currency.ID(), record.ID)
		}

		if record.Date == "" {
			continue
		}

		date, err := time.Parse(recordDateLayout, record.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad record date %q: %v", repository.ErrSourceUnavailable, record.Date, err)
		}

		value, err := decimal.NewFromString(strings.ReplaceAll(record.Value, ",", "."))
		if err != nil {
			return nil, fmt.Errorf("%w: bad record value %q: %v", repository.ErrSourceUnavailable, record.Value, err)
		}

		// Номинал берем из записи курса: в библиотеке валют и в динамике
		// он иногда расходится
		courseCurrency, err := models.NewCurrency(currency.ID(), currency.Name(), record.Nominal)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.Date, err)
		}

		course, err := models.NewCourse(date, courseCurrency, value)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.Date, err)
		}

		courses = append(courses, course)
	}

	return models.NewCourseRange(courses)
}
