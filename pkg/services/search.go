package services

import (
	"errors"
	"math/rand/v2"
	"strings"

	"shici/pkg/models"
)

// ErrNoPoems is returned when a random pick is requested from an empty set.
var ErrNoPoems = errors.New("no poems loaded")

// SearchPoems returns poems whose title, author or content contains query.
// An empty query matches nothing.
func SearchPoems(poems []models.Poem, query string) []models.Poem {
	matches := []models.Poem{}
	if query == "" {
		return matches
	}
	for _, p := range poems {
		if strings.Contains(p.Title, query) ||
			strings.Contains(p.Author, query) ||
			strings.Contains(p.Content, query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// RandomPoem picks one poem uniformly. A nil rng uses the global source.
func RandomPoem(poems []models.Poem, rng *rand.Rand) (models.Poem, error) {
	if len(poems) == 0 {
		return models.Poem{}, ErrNoPoems
	}
	if rng == nil {
		return poems[rand.IntN(len(poems))], nil
	}
	return poems[rng.IntN(len(poems))], nil
}
