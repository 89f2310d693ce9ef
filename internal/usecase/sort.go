package usecase

import "strings"

// DefaultSortField — поле сортировки при отсутствии директивы.
const DefaultSortField = "id"

// ParseSortDirective разбирает директиву сортировки вида "<поле>,<направление>".
// Пустая директива возвращает порядок (defaultField, ASC) и ok=false —
// исходный порядок вызывающей стороны остаётся без изменений.
// Направление сравнивается с "desc" без учёта регистра, любое другое
// значение (в том числе отсутствующее) означает возрастание.
// Имя поля здесь не проверяется: допустимость колонок решает хранилище.
func ParseSortDirective(directive, defaultField string) (Order, bool) {
	if strings.TrimSpace(directive) == "" {
		return Order{Field: defaultField}, false
	}

	parts := strings.Split(directive, ",")
	field := parts[0]
	desc := len(parts) > 1 && strings.EqualFold(parts[1], "desc")

	return Order{Field: field, Desc: desc}, true
}
