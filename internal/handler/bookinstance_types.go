package handler

import (
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

type BookInstanceRequest struct {
	Book    string `json:"book" example:"3f8e2a4c-8a4e-4a0e-9c1d-2f6c1a0b9e11"`
	Imprint string `json:"imprint" example:"Ace Books, 1990"`
	Status  string `json:"status" example:"Available" enums:"Available,Maintenance,Loaned,Reserved"`
	DueBack string `json:"due_back" example:"2026-11-01"`
}

func (r BookInstanceRequest) input() catalog.BookInstanceInput {
	return catalog.BookInstanceInput{
		Book:    r.Book,
		Imprint: r.Imprint,
		Status:  r.Status,
		DueBack: r.DueBack,
	}
}

type BookRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

type BookInstance struct {
	ID               string      `json:"id,omitempty"`
	Book             BookRef     `json:"book"`
	Imprint          string      `json:"imprint"`
	Status           string      `json:"status"`
	DueBack          *model.Date `json:"due_back" swaggertype:"string" example:"2026-11-01"`
	DueBackFormatted string      `json:"due_back_formatted" example:"Nov 1, 2026"`
	URL              string      `json:"url,omitempty"`
}

type BookInstanceListResponse struct {
	BookInstances []BookInstance `json:"bookinstance_list"`
}

type BookInstanceDetailResponse struct {
	BookInstance BookInstance `json:"bookinstance"`
}

type BookInstanceDeleteResponse struct {
	BookInstance BookInstance `json:"bookinstance"`
	Decision     string       `json:"decision" example:"proceed"`
}

type CreateBookInstanceResponse struct {
	Message      string       `json:"message"`
	BookInstance BookInstance `json:"bookinstance"`
}

type BookInstanceFormResponse struct {
	Books []Book `json:"books"`
}

func toBookInstance(bi model.BookInstance) BookInstance {
	ref := BookRef{ID: idString(bi.BookID)}
	if bi.Book != nil {
		ref.Title = bi.Book.Title
		ref.URL = bi.Book.URL()
	}

	res := BookInstance{
		ID:               idString(bi.ID),
		Book:             ref,
		Imprint:          bi.Imprint,
		Status:           bi.Status,
		DueBack:          model.NewDate(bi.DueBack),
		DueBackFormatted: bi.DueBackFormatted(),
	}
	if res.ID != "" {
		res.URL = bi.URL()
	}
	return res
}

func toBookInstances(instances []model.BookInstance) []BookInstance {
	res := make([]BookInstance, 0, len(instances))
	for _, bi := range instances {
		res = append(res, toBookInstance(bi))
	}
	return res
}
