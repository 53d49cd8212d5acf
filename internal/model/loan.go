package model

import "time"

// Loan is the read model for a user's active loans: book fields joined
// with their borrow record, one row per open record.
type Loan struct {
	RecordID   uint         `json:"record_id" gorm:"column:record_id"`
	BookID     uint         `json:"book_id" gorm:"column:book_id"`
	Title      string       `json:"title" gorm:"column:title"`
	Author     string       `json:"author" gorm:"column:author"`
	ISBN       string       `json:"isbn" gorm:"column:isbn"`
	Category   string       `json:"category" gorm:"column:category"`
	BorrowedAt time.Time    `json:"borrowed_date" gorm:"column:borrowed_at"`
	DueAt      time.Time    `json:"due_date" gorm:"column:due_at"`
	Status     BorrowStatus `json:"status" gorm:"column:status"`
}
