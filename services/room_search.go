package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hotelbooking/errors"
	"hotelbooking/models"
)

// minSearchSimilarity is the cutoff below which a room is not considered
// a match for the query.
const minSearchSimilarity = 0.35

// normalizeInput strips accents and case so "Suíte" matches "suite".
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher builds a closestmatch index over the known room types.
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity returns a 0..1 score between two strings.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// scoreRoom ranks a room against the query using its type and description.
func scoreRoom(query string, room models.Room, cmType *closestmatch.ClosestMatch) float64 {
	roomType := normalizeInput(room.Type)
	score := calculateSimilarity(query, roomType)

	if strings.Contains(roomType, query) || strings.Contains(query, roomType) {
		score += 0.5
	}
	if closest := cmType.Closest(query); closest != "" && closest == roomType {
		score += 0.3
	}
	if strings.Contains(normalizeInput(room.Description), query) {
		score += 0.2
	}
	return score
}

// Search ranks the catalog against a free-text query.
func (s *RoomService) Search(query string) ([]models.Room, error) {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "search query is required", nil)
	}

	rooms, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(rooms))
	seen := make(map[string]bool)
	for _, room := range rooms {
		t := normalizeInput(room.Type)
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	cmType := createMatcher(types)

	type scored struct {
		room  models.Room
		score float64
	}
	matches := make([]scored, 0, len(rooms))
	for _, room := range rooms {
		score := scoreRoom(normalizedQuery, room, cmType)
		if score >= minSearchSimilarity {
			matches = append(matches, scored{room: room, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]models.Room, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.room)
	}
	return result, nil
}
