package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const lifespanLayout = "January 2, 2006"

type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"size:100;not null"`
	FamilyName  string    `gorm:"size:100;not null;index"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Name is "family_name, first_name", or empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

func (a Author) URL() string {
	return "/catalog/authors/" + a.ID.String()
}

// Lifespan formats the birth and death dates as "<birth> – <death>",
// using "n/a" for a missing side. When the birth date is known the age in
// completed years is appended, counted up to the death date or now.
func (a Author) Lifespan(now time.Time) string {
	birth, death := "n/a", "n/a"
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format(lifespanLayout)
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format(lifespanLayout)
	}

	s := birth + " – " + death
	if a.DateOfBirth != nil {
		end := now
		if a.DateOfDeath != nil {
			end = *a.DateOfDeath
		}
		s += fmt.Sprintf(" (%d years)", YearsBetween(*a.DateOfBirth, end))
	}
	return s
}

// YearsBetween counts the whole years elapsed from start to end. It is
// negative when end precedes start by at least a year.
func YearsBetween(start, end time.Time) int {
	if end.Before(start) {
		return -YearsBetween(end, start)
	}

	years := end.Year() - start.Year()
	if end.Month() < start.Month() ||
		(end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}
