package models

// Book is a catalog record. The availability flag is the single source of
// truth for loan status; there is no separate loan or borrower record.
type Book struct {
	// ID is the unique identifier of the book, assigned by the store.
	ID int64 `json:"id"`

	// Title of the book. Non-empty, at most 200 characters.
	Title string `json:"title"`

	// Author of the book. Non-empty, at most 200 characters.
	Author string `json:"author"`

	// IsAvailable is true when the book can be checked out and false while
	// it is on loan.
	IsAvailable bool `json:"isAvailable"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookUpdate carries a partial update of a book record. Nil fields leave the
// stored value unchanged; a non-nil IsAvailable always overwrites the flag,
// even when it is false.
type BookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// Empty reports whether the update contains no fields to apply.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.IsAvailable == nil
}
