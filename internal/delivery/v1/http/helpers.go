package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// createProductRequest — JSON-тело создания продукта.
// Цена передаётся в основных единицах ("59.99") и конвертируется в минорные.
type createProductRequest struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
}

// updateProductRequest — тело частичного обновления: отсутствующее поле
// остаётся nil и не перезаписывает сохранённое значение.
type updateProductRequest struct {
	Name     *string      `json:"name"`
	Price    *json.Number `json:"price"`
	Category *string      `json:"category"`
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrInvalidSortField):
		return http.StatusBadRequest, e.ErrInvalidSortField.Error()
	case errors.Is(err, e.ErrMissingID):
		return http.StatusBadRequest, e.ErrMissingID.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()
	case errors.Is(err, e.ErrInvalidBody):
		return http.StatusBadRequest, e.ErrInvalidBody.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// parsePagination извлекает параметры page/size с безопасными значениями по умолчанию.
func parsePagination(r *http.Request) usecase.PageReq {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return usecase.PageReq{Page: page, Size: size}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidID
	}

	return id, nil
}

func decodeCreateRequest(r *http.Request) (*usecase.CreateProductReq, error) {
	var body createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, e.ErrInvalidBody
	}

	price, err := parsePriceToCents(body.Price.String())
	if err != nil {
		return nil, err
	}

	return usecase.NewCreateProductReq(body.Name, price, body.Category), nil
}

func decodeUpdateRequest(r *http.Request) (*usecase.UpdateProductReq, error) {
	var body updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, e.ErrInvalidBody
	}

	req := &usecase.UpdateProductReq{
		Name:     body.Name,
		Category: body.Category,
	}

	if body.Price != nil {
		price, err := parsePriceToCents(body.Price.String())
		if err != nil {
			return nil, err
		}
		req.Price = &price
	}

	return req, nil
}
