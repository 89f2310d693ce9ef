package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	summaryUsecase usecase.SummaryUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, summaryUsecase usecase.SummaryUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		summaryUsecase: summaryUsecase,
		logger:         logger,
	}
}

// listActive
//
//	@Summary		Список активных товаров
//	@Description	Возвращает страницу активных товаров с фильтром по категории и сортировкой
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория"
//	@Param			sort		query		string	false	"Сортировка вида поле,направление (например price,desc)"
//	@Param			page		query		int		false	"Номер страницы (с нуля)"
//	@Param			size		query		int		false	"Размер страницы"
//	@Success		200			{object}	usecase.ProductPage
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listActive(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewListProductsReq(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("sort"),
		parsePagination(r),
	)

	page, err := p.productUsecase.ListActive(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

// listDeleted
//
//	@Summary		Список логически удалённых товаров
//	@Description	Та же форма запроса, что и у активного списка, но по удалённой части каталога
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория"
//	@Param			sort		query		string	false	"Сортировка вида поле,направление"
//	@Param			page		query		int		false	"Номер страницы (с нуля)"
//	@Param			size		query		int		false	"Размер страницы"
//	@Success		200			{object}	usecase.ProductPage
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products/deleted [get]
func (p *ProductHandler) listDeleted(w http.ResponseWriter, r *http.Request) {
	req := usecase.NewListProductsReq(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("sort"),
		parsePagination(r),
	)

	page, err := p.productUsecase.ListDeleted(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

// summary
//
//	@Summary		Агрегат по активным товарам
//	@Description	Количество и средняя цена активных товаров, при необходимости по категории
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория"
//	@Success		200			{object}	usecase.ProductSummary
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products/summary [get]
func (p *ProductHandler) summary(w http.ResponseWriter, r *http.Request) {
	result, err := p.summaryUsecase.Summarize(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getByID
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	usecase.ProductView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, view)
}

// create
//
//	@Summary		Создание товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		createProductRequest	true	"Товар"
//	@Success		201		{object}	usecase.ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.Create(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, view)
}

// update
//
//	@Summary		Частичное обновление товара
//	@Description	Перезаписываются только переданные непустые поля, updatedAt обновляется всегда
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			product	body		updateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	usecase.ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := decodeUpdateRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.Update(r.Context(), id, req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, view)
}

// delete
//
//	@Summary		Логическое удаление товара
//	@Description	Запись остаётся в хранилище и попадает в выборку удалённых
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
