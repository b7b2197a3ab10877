package store

import "github.com/avoronov/go-library-api/models"

// bookFixture returns an available book with the given title and author.
func bookFixture(title, author string) models.Book {
	return models.Book{Title: title, Author: author, IsAvailable: true}
}

// bookUpdate builds a partial update from optional field pointers.
func bookUpdate(title, author *string, isAvailable *bool) models.BookUpdate {
	return models.BookUpdate{Title: title, Author: author, IsAvailable: isAvailable}
}
