package domain

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Document is the loosely typed form of an entity, as read from patch and
// add-on files. Field names are the JSON names of the site entities.
type Document map[string]any

// Key returns the key field of the document, or an empty string
func (d Document) Key() string {
	key, _ := d["key"].(string)
	return key
}

// ToDocuments converts typed entities into documents
func ToDocuments[T any](items []T) ([]Document, error) {
	docs := make([]Document, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item %d: %w", i, err)
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Project converts documents into typed entities. Only the fields of T are
// kept; any other field of a document is dropped. List fields missing from a
// document are set to empty lists.
func Project[T any](docs []Document) ([]T, error) {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %q: %w", doc.Key(), err)
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("document %q does not match the site model: %w", doc.Key(), err)
		}
		if f, ok := any(item).(interface{ withEmptyLists() T }); ok {
			item = f.withEmptyLists()
		}
		items = append(items, item)
	}
	return items, nil
}

// SortByKey sorts entities by ascending key. Entities sharing a key keep
// their relative order.
func SortByKey[T Keyed](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.GetKey(), b.GetKey())
	})
}

// DuplicateKeys returns the keys used by more than one entity of a sorted slice
func DuplicateKeys[T Keyed](sorted []T) []string {
	var duplicates []string
	for i := 1; i < len(sorted); i++ {
		key := sorted[i].GetKey()
		if key == sorted[i-1].GetKey() && (len(duplicates) == 0 || duplicates[len(duplicates)-1] != key) {
			duplicates = append(duplicates, key)
		}
	}
	return duplicates
}
