package models

import "strconv"

// Course is one entry of the catalog. Values are never modified after construction.
type Course struct {
	Title         string
	Code          string
	CreditHours   int
	Description   string
	Prerequisites string
}

// ItemKey identifies a rendered card for the life of a screen session.
type ItemKey string

// NewItemKey builds the key for the ordinal-th occurrence of code in a catalog.
func NewItemKey(code string, ordinal int) ItemKey {
	return ItemKey(code + "#" + strconv.Itoa(ordinal))
}

// ItemKeys derives one key per course. Keys are content-derived so moving a
// course keeps its key; repeated codes are told apart by their relative order.
func ItemKeys(courses []Course) []ItemKey {
	seen := make(map[string]int, len(courses))
	keys := make([]ItemKey, len(courses))
	for i, c := range courses {
		keys[i] = NewItemKey(c.Code, seen[c.Code])
		seen[c.Code]++
	}
	return keys
}
