// Package cbr реализует репозитории поверх XML-выгрузок cbr.ru
package cbr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ryabkov/cbrcourse/internal/core/repository"
	"golang.org/x/text/encoding/charmap"
)

// requestDateLayout - формат дат в параметрах запросов к cbr.ru
const requestDateLayout = "02/01/2006"

// fetch выполняет GET-запрос и возвращает тело ответа.
// Транспортные ошибки и не-200 статусы сворачиваются в ErrSourceUnavailable.
func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", repository.ErrSourceUnavailable, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSourceUnavailable, err)
	}

	return body, nil
}

// charsetReader декодирует windows-1251, в которой cbr.ru отдает XML
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "windows-1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	case "utf-8":
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}
