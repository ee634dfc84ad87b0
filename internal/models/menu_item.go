package models

import "time"

type Category string

const (
	CategoryEntradas Category = "Entradas"
	CategoryFondos   Category = "Fondos"
	CategoryPostres  Category = "Postres"
	CategoryBebidas  Category = "Bebidas"
)

// Categories in carta display order.
var Categories = []Category{CategoryEntradas, CategoryFondos, CategoryPostres, CategoryBebidas}

// MenuItem is one dish on the carta. IDs are assigned by the application at
// creation time (milliseconds since epoch) and never reused, so the table does
// not use an autoincrement column.
type MenuItem struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Category    Category  `json:"category" gorm:"size:20;not null;index"`
	Price       float64   `json:"price" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"type:text"`
	Available   bool      `json:"available" gorm:"not null;default:true"`
	UpdatedAt   time.Time `json:"updated_at"`
}
