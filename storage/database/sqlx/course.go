package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

const courseColumns = "id, name, duration, fee, description, created_at"

const insertCourseQuery = `
	INSERT INTO courses (name, duration, fee, description, created_at)
	VALUES (:name, :duration, :fee, :description, :created_at)`

type courseRepository struct {
	db core.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db core.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	id, err := insertReturningID(ctx, repo.db, insertCourseQuery+" RETURNING id", crs)
	if err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return course.Course{}, course.ErrNameExists
		}
		return course.Course{}, database.TrapErr(err, nil, "inserting course")
	}
	crs.ID = id
	return crs, nil
}

func (repo courseRepository) InsertMissingCourses(ctx context.Context, courses []course.Course) (int, error) {
	var added int
	err := database.WithTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		for _, crs := range courses {
			res, err := tx.NamedExecContext(ctx, insertCourseQuery+" ON CONFLICT (name) DO NOTHING", crs)
			if err != nil {
				return database.TrapErr(err, nil, "inserting course "+crs.Name)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return database.TrapErr(err, nil, "reading rows affected")
			}
			added += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (repo courseRepository) QueryCourses(ctx context.Context, page core.Page) ([]course.Course, int, error) {
	courses := make([]course.Course, 0)
	total, err := queryPage(ctx, repo.db, &courses, courseColumns, "courses", page, core.DBOrdering{Field: "id", Ascending: true})
	if err != nil {
		return nil, 0, database.TrapErr(err, nil, "querying courses")
	}
	return courses, total, nil
}

func (repo courseRepository) GetCourseByName(ctx context.Context, name string) (course.Course, error) {
	var crs course.Course
	err := repo.db.GetContext(ctx, &crs, "SELECT "+courseColumns+" FROM courses WHERE name = $1", name)
	return crs, database.TrapErr(err, course.ErrNotFound, "finding course by name")
}

func (repo courseRepository) GetCoursesByName(ctx context.Context, names []string) (map[string]course.Course, error) {
	found := make(map[string]course.Course, len(names))
	if len(names) == 0 {
		return found, nil
	}

	q, args, err := sqlx.In("SELECT "+courseColumns+" FROM courses WHERE name IN (?)", names)
	if err != nil {
		return nil, database.TrapErr(err, nil, "building courses query")
	}
	var courses []course.Course
	if err = repo.db.SelectContext(ctx, &courses, repo.db.Rebind(q), args...); err != nil {
		return nil, database.TrapErr(err, nil, "querying courses by name")
	}
	for _, crs := range courses {
		found[crs.Name] = crs
	}
	return found, nil
}
