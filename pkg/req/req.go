package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const maxBodySize = 1 << 20

// Decode разбирает JSON тело запроса. Пустое тело ошибка
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, fmt.Errorf("decode request: %w", err)
	}
	return payload, nil
}
