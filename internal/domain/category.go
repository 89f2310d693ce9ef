package domain

import (
	"strings"

	"github.com/DRSN-tech/catalog-service/pkg/e"
)

// Category — элемент закрытого словаря категорий каталога.
// Новые значения добавляются только через этот список, открытых строк нет.
type Category string

const (
	CategoryShoes       Category = "shoes"
	CategoryClothes     Category = "clothes"
	CategoryUnderwear   Category = "underwear"
	CategoryAccessories Category = "accessories"
)

var categories = []Category{
	CategoryShoes,
	CategoryClothes,
	CategoryUnderwear,
	CategoryAccessories,
}

// Categories возвращает все элементы словаря.
func Categories() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)
	return result
}

// CategoryFromString преобразует строку в Category.
// Сравнение точное, без учёта регистра; частичных совпадений нет.
func CategoryFromString(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", e.ErrInvalidCategory
}

func (c Category) String() string {
	return string(c)
}
