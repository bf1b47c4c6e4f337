package dummydb

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	std.ID = repo.db.nextID("students")
	repo.db.students[std.ID] = std
	return std, nil
}

func (repo *studentRepository) QueryStudents(_ context.Context, page core.Page) ([]student.Student, int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, 0, len(repo.db.students))
	for _, id := range sortedIDs(repo.db.students) {
		students = append(students, repo.db.students[id])
	}
	return paginate(students, page), len(students), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if std, ok := repo.db.students[id]; ok {
		return std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.students[id]; !ok {
		return student.ErrNotFound
	}
	for pid, pmt := range repo.db.payments {
		if pmt.StudentID == id {
			delete(repo.db.payments, pid)
		}
	}
	delete(repo.db.students, id)
	return nil
}

func (repo *studentRepository) UpdateStudentStatus(_ context.Context, id int, status string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	std, ok := repo.db.students[id]
	if !ok {
		return student.ErrNotFound
	}
	std.Status = status
	repo.db.students[id] = std
	return nil
}
