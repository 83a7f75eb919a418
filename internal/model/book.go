package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title     string      `gorm:"not null;index"`
	AuthorID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Author    *Author     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Summary   string      `gorm:"not null"`
	ISBN      string      `gorm:"column:isbn;not null"`
	Genres    []BookGenre `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookGenre links a book to one of its genres. Position keeps the order
// the genres were given in.
type BookGenre struct {
	BookID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenreID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Genre    *Genre    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Position int       `gorm:"not null"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

func (b Book) URL() string {
	return "/catalog/books/" + b.ID.String()
}

// GenreIDs returns the referenced genre ids in their stored order.
func (b Book) GenreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.GenreID)
	}
	return ids
}

// SetGenreIDs replaces the genre links, keeping the first occurrence of
// any repeated id.
func (b *Book) SetGenreIDs(ids []uuid.UUID) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	links := make([]BookGenre, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, BookGenre{
			BookID:   b.ID,
			GenreID:  id,
			Position: len(links),
		})
	}
	b.Genres = links
}
