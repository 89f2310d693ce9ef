package http

import (
	_ "github.com/DRSN-tech/catalog-service/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, sumUC usecase.SummaryUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, sumUC, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listActive)
		pr.Get("/deleted", prHandler.listDeleted)
		pr.Get("/summary", prHandler.summary)
		pr.Post("/", prHandler.create)

		pr.Route("/{id}", func(item chi.Router) {
			item.Get("/", prHandler.getByID)
			item.Put("/", prHandler.update)
			item.Delete("/", prHandler.delete)
		})
	})
}
