package domain

import "time"

// Product описывает запись каталога.
// Поле DeletedAt реализует логическое удаление: nil — запись активна,
// проставленная метка — запись скрыта из активной выборки, но остаётся в хранилище.
type Product struct {
	ID        int64
	Name      string
	Price     int64 // Цена хранится в минорных единицах
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func NewProduct(name string, price int64, category Category) *Product {
	return &Product{
		Name:     name,
		Price:    price,
		Category: category,
	}
}

// IsDeleted сообщает, была ли запись логически удалена.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
