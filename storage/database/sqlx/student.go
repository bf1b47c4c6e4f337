package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

const studentColumns = "id, name, father, dob, phone, course, branch, total_fee, discount, paid_amount, status, enrollment_date, created_at"

type studentRepository struct {
	db core.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db core.DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	id, err := insertReturningID(ctx, repo.db, `
		INSERT INTO students (name, father, dob, phone, course, branch, total_fee, discount, paid_amount, status, enrollment_date, created_at)
		VALUES (:name, :father, :dob, :phone, :course, :branch, :total_fee, :discount, :paid_amount, :status, :enrollment_date, :created_at)
		RETURNING id`, std)
	if err != nil {
		return student.Student{}, database.TrapErr(err, nil, "inserting student")
	}
	std.ID = id
	return std, nil
}

func (repo studentRepository) QueryStudents(ctx context.Context, page core.Page) ([]student.Student, int, error) {
	students := make([]student.Student, 0)
	total, err := queryPage(ctx, repo.db, &students, studentColumns, "students", page, core.DBOrdering{Field: "id", Ascending: true})
	if err != nil {
		return nil, 0, database.TrapErr(err, nil, "querying students")
	}
	return students, total, nil
}

func (repo studentRepository) GetStudentByID(ctx context.Context, id int) (student.Student, error) {
	var std student.Student
	err := repo.db.GetContext(ctx, &std, "SELECT "+studentColumns+" FROM students WHERE id = $1", id)
	return std, database.TrapErr(err, student.ErrNotFound, "finding student by ID")
}

func (repo studentRepository) DeleteStudent(ctx context.Context, id int) error {
	return database.WithTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM payments WHERE student_id = $1", id); err != nil {
			return database.TrapErr(err, nil, "deleting student payments")
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
		if err != nil {
			return database.TrapErr(err, nil, "deleting student")
		}
		return checkAffected(res, student.ErrNotFound)
	})
}

func (repo studentRepository) UpdateStudentStatus(ctx context.Context, id int, status string) error {
	res, err := repo.db.ExecContext(ctx, "UPDATE students SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return database.TrapErr(err, nil, "updating student status")
	}
	return checkAffected(res, student.ErrNotFound)
}
