package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"savanna/models"
)

// NormalizeInput lowercases and strips accents so "Nairóbi" matches "nairobi".
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func newMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// similarity is 1 - normalized levenshtein distance; empty strings count as
// a perfect match.
func similarity(a, b string) float64 {
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

func uniqueCities(properties []models.Property) []string {
	seen := make(map[string]bool)
	cities := make([]string, 0, len(properties))
	for _, p := range properties {
		c := NormalizeInput(p.City)
		if c != "" && !seen[c] {
			seen[c] = true
			cities = append(cities, c)
		}
	}
	return cities
}

func scoreProperty(query string, p models.Property, cityMatcher *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeInput(p.Name)
	if strings.Contains(name, query) || strings.Contains(query, name) {
		score += 30
	} else if similarity(name, query) > 0.6 {
		score += 20
	}

	if cityMatcher != nil {
		cityMatch := cityMatcher.Closest(query)
		if cityMatch != "" && cityMatch == NormalizeInput(p.City) && strings.Contains(query, cityMatch) {
			score += 25
		}
	}

	for _, amenity := range p.Amenities {
		if strings.Contains(query, NormalizeInput(amenity)) {
			score += 5
		}
	}

	return score
}

// RankProperties orders properties by fuzzy relevance to query, dropping
// everything that scores zero. An empty query returns the input unchanged.
func RankProperties(query string, properties []models.Property) []models.Property {
	normalized := NormalizeInput(query)
	if normalized == "" {
		return properties
	}

	var cityMatcher *closestmatch.ClosestMatch
	if cities := uniqueCities(properties); len(cities) > 0 {
		cityMatcher = newMatcher(cities)
	}

	type scored struct {
		property models.Property
		score    int
	}
	ranked := make([]scored, 0, len(properties))
	for _, p := range properties {
		if s := scoreProperty(normalized, p, cityMatcher); s > 0 {
			ranked = append(ranked, scored{property: p, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]models.Property, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.property)
	}
	return result
}
