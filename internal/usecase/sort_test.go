package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortDirective_Empty(t *testing.T) {
	order, ok := ParseSortDirective("", DefaultSortField)

	assert.False(t, ok)
	assert.Equal(t, Order{Field: "id"}, order)
}

func TestParseSortDirective_Blank(t *testing.T) {
	order, ok := ParseSortDirective("   ", DefaultSortField)

	assert.False(t, ok)
	assert.Equal(t, Order{Field: "id"}, order)
}

func TestParseSortDirective_FieldAndDirection(t *testing.T) {
	order, ok := ParseSortDirective("price,desc", DefaultSortField)

	assert.True(t, ok)
	assert.Equal(t, Order{Field: "price", Desc: true}, order)
}

func TestParseSortDirective_DirectionCaseInsensitive(t *testing.T) {
	order, ok := ParseSortDirective("name,DESC", DefaultSortField)

	assert.True(t, ok)
	assert.Equal(t, Order{Field: "name", Desc: true}, order)
}

func TestParseSortDirective_UnknownDirectionMeansAscending(t *testing.T) {
	order, ok := ParseSortDirective("price,sideways", DefaultSortField)

	assert.True(t, ok)
	assert.Equal(t, Order{Field: "price", Desc: false}, order)
}

func TestParseSortDirective_SingleToken(t *testing.T) {
	order, ok := ParseSortDirective("name", DefaultSortField)

	assert.True(t, ok)
	assert.Equal(t, Order{Field: "name", Desc: false}, order)
}

func TestParseSortDirective_FieldNotValidatedHere(t *testing.T) {
	// Имя поля пропускается как есть: допустимость решает хранилище.
	order, ok := ParseSortDirective("no_such_field,desc", DefaultSortField)

	assert.True(t, ok)
	assert.Equal(t, Order{Field: "no_such_field", Desc: true}, order)
}
