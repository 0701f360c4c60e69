package validators

import (
	"strconv"
	"strings"
)

// ParseID разбирает строковый идентификатор из URL.
// Идентификаторы сущностей всегда положительные числа.
func ParseID(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParsePagination разбирает параметры limit/offset строки запроса.
// Пустые значения допустимы: limit=0 означает выдачу без ограничения.
func ParsePagination(limitValue string, offsetValue string) (limit int, offset int, ok bool) {
	if limitValue != "" {
		parsed, err := strconv.Atoi(limitValue)
		if err != nil || parsed < 0 {
			return 0, 0, false
		}
		limit = parsed
	}
	if offsetValue != "" {
		parsed, err := strconv.Atoi(offsetValue)
		if err != nil || parsed < 0 {
			return 0, 0, false
		}
		offset = parsed
	}
	return limit, offset, true
}
