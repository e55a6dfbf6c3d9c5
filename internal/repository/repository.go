package repository

import "gorm.io/gorm"

type Repository struct {
	DB           *gorm.DB
	Orders       OrderRepo
	OrderItems   OrderItemRepo
	ProductTypes ProductTypeRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		Orders:       NewOrderRepo(db),
		OrderItems:   NewOrderItemRepo(db),
		ProductTypes: NewProductTypeRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
