package usecase

import "errors"

var (
	// ErrInvalidRequest - запрос ссылается на неизвестную валюту
	ErrInvalidRequest = errors.New("invalid daily course request")
)
