package handler

import (
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

type GenreRequest struct {
	Name string `json:"name" example:"Science Fiction"`
}

func (r GenreRequest) input() catalog.GenreInput {
	return catalog.GenreInput{Name: r.Name}
}

type Genre struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type GenreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type GenreListResponse struct {
	Genres []Genre `json:"genre_list"`
}

type GenreDetailResponse struct {
	Genre Genre         `json:"genre"`
	Books []BookSummary `json:"genre_books"`
}

type GenreDeleteResponse struct {
	Genre    Genre         `json:"genre"`
	Books    []BookSummary `json:"genre_books"`
	Decision string        `json:"decision" example:"proceed"`
}

type CreateGenreResponse struct {
	Message string `json:"message"`
	Genre   Genre  `json:"genre"`
}

func toGenre(g model.Genre) Genre {
	res := Genre{ID: idString(g.ID), Name: g.Name}
	if res.ID != "" {
		res.URL = g.URL()
	}
	return res
}

func toGenres(genres []model.Genre) []Genre {
	res := make([]Genre, 0, len(genres))
	for _, g := range genres {
		res = append(res, toGenre(g))
	}
	return res
}

func toGenreSummary(link model.BookGenre) GenreSummary {
	s := GenreSummary{ID: idString(link.GenreID)}
	if link.Genre != nil {
		s.Name = link.Genre.Name
		s.URL = link.Genre.URL()
	}
	return s
}
