package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"целое значение", "600", 60000},
		{"два знака после точки", "599.99", 59999},
		{"один знак после точки", "10.5", 1050},
		{"ноль", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceToCents_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"пустая строка", "", e.ErrInvalidPrice},
		{"не число", "abc", e.ErrInvalidPrice},
		{"отрицательное", "-1", e.ErrInvalidPrice},
		{"слишком большое", "200000000000", e.ErrInvalidPrice},
		{"три знака после точки", "1.999", e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePriceToCents(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{e.ErrInvalidCategory, http.StatusBadRequest},
		{e.ErrInvalidSortField, http.StatusBadRequest},
		{e.ErrMissingID, http.StatusBadRequest},
		{e.ErrInvalidID, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.ErrPricePrecision, http.StatusBadRequest},
		{e.ErrNameRequired, http.StatusBadRequest},
		{e.ErrInvalidBody, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.wantCode, code)
		assert.Equal(t, tt.err.Error(), msg)
	}
}

func TestToHTTPResponse_WrappedError(t *testing.T) {
	code, _ := ToHTTPResponse(e.Wrap("ProductUseCase.GetByID", e.ErrProductNotFound))

	assert.Equal(t, http.StatusNotFound, code)
}

func TestToHTTPResponse_UnknownError(t *testing.T) {
	code, msg := ToHTTPResponse(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
