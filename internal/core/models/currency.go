package models

import "encoding/json"

// Currency описывает валюту из библиотеки cbr.ru
type Currency struct {
	id      string
	name    string
	nominal int64 // номинал: за сколько единиц валюты указывается курс
}

// NewCurrency создает валюту. Номинал обязан быть строго больше нуля.
func NewCurrency(id, name string, nominal int64) (Currency, error) {
	if nominal <= 0 {
		return Currency{}, ErrInvalidNominal
	}

	return Currency{id: id, name: name, nominal: nominal}, nil
}

func (c Currency) ID() string {
	return c.id
}

func (c Currency) Name() string {
	return c.name
}

func (c Currency) Nominal() int64 {
	return c.nominal
}

type currencyJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Nominal int64  `json:"nominal"`
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyJSON{ID: c.id, Name: c.name, Nominal: c.nominal})
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var raw currencyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	currency, err := NewCurrency(raw.ID, raw.Name, raw.Nominal)
	if err != nil {
		return err
	}

	*c = currency
	return nil
}
