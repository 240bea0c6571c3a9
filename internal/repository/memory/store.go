// Package memory holds an in-memory implementation of the repository
// contracts. It interprets the same specifications as the GORM layer, which
// lets service tests run against real unit of work wiring without a database.
package memory

import (
	"sort"
	"sync"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	users     map[uuid.UUID]*entity.User
	folders   map[uuid.UUID]*entity.Folder
	tags      map[uuid.UUID]*entity.Tag
	notes     map[uuid.UUID]*entity.Note
	noteTags  map[uuid.UUID][]uuid.UUID
	revisions map[uuid.UUID]*entity.Revision
	issues    map[uuid.UUID]*entity.Issue
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		folders:   make(map[uuid.UUID]*entity.Folder),
		tags:      make(map[uuid.UUID]*entity.Tag),
		notes:     make(map[uuid.UUID]*entity.Note),
		noteTags:  make(map[uuid.UUID][]uuid.UUID),
		revisions: make(map[uuid.UUID]*entity.Revision),
		issues:    make(map[uuid.UUID]*entity.Issue),
	}
}

// ordering mirrors the OrderBy specification for the fields the services
// actually sort on.
type ordering struct {
	field string
	desc  bool
}

func extractOrdering(specs []specification.Specification) *ordering {
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok {
			return &ordering{field: o.Field, desc: o.Desc}
		}
	}
	return nil
}

func sortSlice[T any](items []T, ord *ordering, less func(a, b T, field string) bool) {
	if ord == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if ord.desc {
			return less(items[j], items[i], ord.field)
		}
		return less(items[i], items[j], ord.field)
	})
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
