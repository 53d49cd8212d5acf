package model

import "time"

// BorrowStatus is the lifecycle state of a borrow record.
type BorrowStatus string

const (
	BorrowStatusBorrowed BorrowStatus = "borrowed"
	BorrowStatusReturned BorrowStatus = "returned"
)

// BorrowRecord tracks one loan of a book to a user. It is created in the
// "borrowed" state and mutated exactly once when the book comes back.
// Records are removed only by cascade when their book or user is deleted.
type BorrowRecord struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	BookID     uint         `json:"book_id" gorm:"not null;index"`
	UserID     uint         `json:"user_id" gorm:"not null;index"`
	BorrowedAt time.Time    `json:"borrowed_date"`
	DueAt      time.Time    `json:"due_date"`
	ReturnedAt *time.Time   `json:"returned_date"`
	Status     BorrowStatus `json:"status" gorm:"type:varchar(20);not null;default:'borrowed';index"`

	// Relations
	Book Book `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
