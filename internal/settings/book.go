package settings

import (
	"errors"
	"slices"
)

var ErrBookNotFound = errors.New("book not found")

// Most recently read books kept in the settings file.
const maxBooks = 256

// Position is a place in a book.
type Position struct {
	// Chapter index in the spine
	Chapter int `yaml:"chapter"`
	// Scroll offset inside the chapter along the layout axis
	Offset float64 `yaml:"offset"`
}

type Book struct {
	// Unique ID of the book
	ID string `yaml:"id"`
	// Where reading stopped
	Position Position `yaml:"position"`
	// Named positions set by the user
	Bookmarks map[string]Position `yaml:"bookmarks,omitempty"`
}

// BookSet is ordered from the most recently read book.
type BookSet []Book

func (setP *BookSet) Book(id string) (Book, error) {
	for _, b := range *setP {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrBookNotFound
}

// SetBook stores book and moves it to the front.
func (setP *BookSet) SetBook(book Book) {
	set := *setP
	defer func() { *setP = set }()

	i := slices.IndexFunc(set, func(b Book) bool { return b.ID == book.ID })
	if i < 0 {
		set = append(set, book)
		i = len(set) - 1
	}
	copy(set[1:i+1], set[:i])
	set[0] = book

	if len(set) > maxBooks {
		set = set[:maxBooks]
	}
}

func (setP *BookSet) LastBook() (Book, error) {
	if len(*setP) == 0 {
		return Book{}, ErrBookNotFound
	}
	return (*setP)[0], nil
}

// Tidy drops every book whose ID is not in ids.
func (setP *BookSet) Tidy(ids []string) {
	books := make([]Book, 0, len(ids))
	for _, b := range *setP {
		if slices.Contains(ids, b.ID) {
			books = append(books, b)
		}
	}
	*setP = books
}
