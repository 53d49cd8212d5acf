package model

import "time"

// Book represents a catalog entry. Available is true iff no borrow record
// for this book currently has status "borrowed".
type Book struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null;index"`
	Author    string    `json:"author" gorm:"size:255;not null"`
	ISBN      string    `json:"isbn" gorm:"uniqueIndex;size:32;not null"`
	Category  string    `json:"category" gorm:"size:100"`
	Available bool      `json:"available" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
