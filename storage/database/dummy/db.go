package dummydb

import (
	"context"
	"sort"
	"sync"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

// DB is an in-memory store. One lock guards every table so multi-table writes are atomic.
type DB struct {
	sync.RWMutex
	users    map[int]user.User
	courses  map[int]course.Course
	students map[int]student.Student
	payments map[int]payment.Payment
	pkCount  map[string]int
}

var _ core.Pinger = (*DB)(nil)

func Open() (*DB, error) {
	db := &DB{
		users:    make(map[int]user.User),
		courses:  make(map[int]course.Course),
		students: make(map[int]student.Student),
		payments: make(map[int]payment.Payment),
		pkCount:  make(map[string]int),
	}
	return db, nil
}

func (db *DB) PingContext(context.Context) error {
	return nil
}

// nextID must be called with the write lock held.
func (db *DB) nextID(table string) int {
	db.pkCount[table]++
	return db.pkCount[table]
}

func sortedIDs[T any](table map[int]T) []int {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// paginate returns the page window of `items`.
func paginate[T any](items []T, page core.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return make([]T, 0)
	}
	end := start + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
