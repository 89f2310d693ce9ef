package main

import (
	"github.com/DRSN-tech/catalog-service/internal/app"
)

//	@title			Catalog Service API
//	@version		1.0
//	@description	Сервис каталога товаров: листинги, логическое удаление, агрегаты.

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	app.Run()
}
