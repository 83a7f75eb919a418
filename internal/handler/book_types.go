package handler

import (
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

type BookRequest struct {
	Title   string     `json:"title" example:"Dune"`
	Author  string     `json:"author" example:"3f8e2a4c-8a4e-4a0e-9c1d-2f6c1a0b9e11"`
	Summary string     `json:"summary" example:"A desert planet and its spice."`
	ISBN    string     `json:"isbn" example:"9780441013593"`
	Genre   StringList `json:"genre" swaggertype:"array,string"`
}

func (r BookRequest) input() catalog.BookInput {
	return catalog.BookInput{
		Title:   r.Title,
		Author:  r.Author,
		Summary: r.Summary,
		ISBN:    r.ISBN,
		Genre:   r.Genre,
	}
}

type Book struct {
	ID      string         `json:"id,omitempty"`
	Title   string         `json:"title"`
	Author  AuthorSummary  `json:"author"`
	Summary string         `json:"summary"`
	ISBN    string         `json:"isbn"`
	Genre   []GenreSummary `json:"genre"`
	URL     string         `json:"url,omitempty"`
}

type BookSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

type BookListResponse struct {
	Books []Book `json:"book_list"`
}

type BookDetailResponse struct {
	Book      Book           `json:"book"`
	Instances []BookInstance `json:"book_instances"`
}

type BookDeleteResponse struct {
	Book      Book           `json:"book"`
	Instances []BookInstance `json:"book_instances"`
	Decision  string         `json:"decision" example:"blocked"`
}

type CreateBookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type BookFormResponse struct {
	Authors []Author `json:"authors"`
	Genres  []Genre  `json:"genres"`
}

func toBook(b model.Book) Book {
	genres := make([]GenreSummary, 0, len(b.Genres))
	for _, link := range b.Genres {
		genres = append(genres, toGenreSummary(link))
	}

	res := Book{
		ID:      idString(b.ID),
		Title:   b.Title,
		Author:  toAuthorSummary(b),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genre:   genres,
	}
	if res.ID != "" {
		res.URL = b.URL()
	}
	return res
}

func toBooks(books []model.Book) []Book {
	res := make([]Book, 0, len(books))
	for _, b := range books {
		res = append(res, toBook(b))
	}
	return res
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:      b.ID.String(),
		Title:   b.Title,
		Summary: b.Summary,
		URL:     b.URL(),
	}
}

func toBookSummaries(books []model.Book) []BookSummary {
	res := make([]BookSummary, 0, len(books))
	for _, b := range books {
		res = append(res, toBookSummary(b))
	}
	return res
}
