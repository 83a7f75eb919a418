package handler

import (
	"time"

	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

type AuthorRequest struct {
	FirstName   string `json:"first_name" example:"Frank"`
	FamilyName  string `json:"family_name" example:"Herbert"`
	DateOfBirth string `json:"date_of_birth" example:"1920-10-08"`
	DateOfDeath string `json:"date_of_death" example:"1986-02-11"`
}

func (r AuthorRequest) input() catalog.AuthorInput {
	return catalog.AuthorInput{
		FirstName:   r.FirstName,
		FamilyName:  r.FamilyName,
		DateOfBirth: r.DateOfBirth,
		DateOfDeath: r.DateOfDeath,
	}
}

type Author struct {
	ID          string      `json:"id,omitempty"`
	FirstName   string      `json:"first_name"`
	FamilyName  string      `json:"family_name"`
	DateOfBirth *model.Date `json:"date_of_birth" swaggertype:"string" example:"1920-10-08"`
	DateOfDeath *model.Date `json:"date_of_death" swaggertype:"string" example:"1986-02-11"`
	Name        string      `json:"name"`
	Lifespan    string      `json:"lifespan"`
	URL         string      `json:"url,omitempty"`
}

type AuthorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type AuthorListResponse struct {
	Authors []Author `json:"author_list"`
}

type AuthorDetailResponse struct {
	Author Author        `json:"author"`
	Books  []BookSummary `json:"author_books"`
}

type AuthorDeleteResponse struct {
	Author   Author        `json:"author"`
	Books    []BookSummary `json:"author_books"`
	Decision string        `json:"decision" example:"proceed"`
}

type CreateAuthorResponse struct {
	Message string `json:"message"`
	Author  Author `json:"author"`
}

func toAuthor(a model.Author) Author {
	res := Author{
		ID:          idString(a.ID),
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: model.NewDate(a.DateOfBirth),
		DateOfDeath: model.NewDate(a.DateOfDeath),
		Name:        a.Name(),
		Lifespan:    a.Lifespan(time.Now()),
	}
	if res.ID != "" {
		res.URL = a.URL()
	}
	return res
}

func toAuthors(authors []model.Author) []Author {
	res := make([]Author, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthor(a))
	}
	return res
}

// toAuthorSummary describes the author a book points at. Only the id is
// known when the author was not loaded.
func toAuthorSummary(b model.Book) AuthorSummary {
	s := AuthorSummary{ID: idString(b.AuthorID)}
	if b.Author != nil {
		s.Name = b.Author.Name()
		s.URL = b.Author.URL()
	}
	return s
}
