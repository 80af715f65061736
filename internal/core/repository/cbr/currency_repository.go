package cbr

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
)

const (
	// modeDaily - валюты с ежедневными котировками
	modeDaily = 0
	// modeMonthly - валюты с ежемесячными котировками
	modeMonthly = 1
)

// valutaDocument - ответ XML_val.asp
type valutaDocument struct {
	XMLName xml.Name     `xml:"Valuta"`
	Items   []valutaItem `xml:"Item"`
}

type valutaItem struct {
	ID      string `xml:"ID,attr"`
	Name    string `xml:"Name"`
	Nominal int64  `xml:"Nominal"`
}

type currencyRepository struct {
	client  *http.Client
	baseURL string
	log     logger.Logger
}

func NewCurrencyRepository(client *http.Client, baseURL string, log logger.Logger) repository.CurrencyRepository {
	return &currencyRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (r *currencyRepository) GetCurrencies(ctx context.Context) ([]models.Currency, error) {
	daily, err := r.getCurrenciesList(ctx, modeDaily)
	if err != nil {
		return nil, err
	}

	monthly, err := r.getCurrenciesList(ctx, modeMonthly)
	if err != nil {
		return nil, err
	}

	return append(daily, monthly...), nil
}

func (r *currencyRepository) GetCurrencyByID(ctx context.Context, id string) (models.Currency, error) {
	currencies, err := r.GetCurrencies(ctx)
	if err != nil {
		return models.Currency{}, err
	}

	for _, currency := range currencies {
		if currency.ID() == id {
			return currency, nil
		}
	}

	return models.Currency{}, fmt.Errorf("%w: %s", repository.ErrCurrencyNotFound, id)
}

func (r *currencyRepository) getCurrenciesList(ctx context.Context, mode int) ([]models.Currency, error) {
	url := fmt.Sprintf("%s/scripts/XML_val.asp?d=%d", r.baseURL, mode)

	r.log.Debug("Fetching currency library", logger.StringField("url", url))

	body, err := fetch(ctx, r.client, url)
	if err != nil {
		return nil, fmt.Errorf("fetch currency library: %w", err)
	}

	return parseCurrencies(body)
}

func parseCurrencies(body []byte) ([]models.Currency, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charsetReader

	var document valutaDocument
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: decoding currency library: %v", repository.ErrSourceUnavailable, err)
	}

	currencies := make([]models.Currency, 0, len(document.Items))
	for _, item := range document.Items {
		if item.ID == "" {
			continue
		}

		currency, err := models.NewCurrency(item.ID, strings.TrimSpace(item.Name), item.Nominal)
		if err != nil {
			return nil, fmt.Errorf("currency %s: %w", item.ID, err)
		}

		currencies = append(currencies, currency)
	}

	return currencies, nil
}
