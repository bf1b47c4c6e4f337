package dummydb

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

// byName must be called with a lock held.
func (repo *courseRepository) byName(name string) (course.Course, bool) {
	for _, crs := range repo.db.courses {
		if crs.Name == name {
			return crs, true
		}
	}
	return course.Course{}, false
}

func (repo *courseRepository) insert(crs course.Course) course.Course {
	crs.ID = repo.db.nextID("courses")
	repo.db.courses[crs.ID] = crs
	return crs
}

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, exists := repo.byName(crs.Name); exists {
		return course.Course{}, course.ErrNameExists
	}
	return repo.insert(crs), nil
}

func (repo *courseRepository) InsertMissingCourses(_ context.Context, courses []course.Course) (int, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var added int
	for _, crs := range courses {
		if _, exists := repo.byName(crs.Name); !exists {
			repo.insert(crs)
			added++
		}
	}
	return added, nil
}

func (repo *courseRepository) QueryCourses(_ context.Context, page core.Page) ([]course.Course, int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, id := range sortedIDs(repo.db.courses) {
		courses = append(courses, repo.db.courses[id])
	}
	return paginate(courses, page), len(courses), nil
}

func (repo *courseRepository) GetCourseByName(_ context.Context, name string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.byName(name); ok {
		return crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) GetCoursesByName(_ context.Context, names []string) (map[string]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	found := make(map[string]course.Course, len(names))
	for _, name := range names {
		if crs, ok := repo.byName(name); ok {
			found[name] = crs
		}
	}
	return found, nil
}
