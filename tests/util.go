package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

// TestDatabaseURLEnv names the variable pointing at a disposable PostgreSQL database.
const TestDatabaseURLEnv = "TEST_DATABASE_URL"

// NewValidator returns a validator set up the way the API server uses it.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	return validate, translator
}

// PrepareDB opens the test database and rebuilds its schema. The test is skipped when no database is configured.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s is not set", TestDatabaseURLEnv)
	}
	db, err := database.Open(&core.Config{DatabaseURL: dsn})
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.RunMigrations("reset", db.DB); err != nil {
		t.Fatalf("PrepareDB() reset failed: %v", err)
	}
	if err = database.Migrate(db); err != nil {
		t.Fatalf("PrepareDB() migrate failed: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, repo user.Repository, uname, pwd, role string) user.User {
	t.Helper()

	usr := user.User{
		Username:  uname,
		Email:     null.StringFrom(uname + "@test.in"),
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, repo course.Repository, name, duration string, fee float64) course.Course {
	t.Helper()

	crs, err := repo.CreateCourse(context.Background(), course.Course{
		Name:      name,
		Duration:  duration,
		Fee:       fee,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, crs string,
	totalFee, discount float64,
	enrolledAt ...time.Time,
) student.Student {
	t.Helper()

	tstamp := time.Now().UTC().Truncate(time.Microsecond)
	enrolled := tstamp
	if len(enrolledAt) > 0 {
		enrolled = enrolledAt[0].UTC()
	}
	std, err := repo.CreateStudent(context.Background(), student.Student{
		Name:           name,
		Course:         crs,
		TotalFee:       totalFee,
		Discount:       discount,
		Status:         student.StatusActive,
		EnrollmentDate: enrolled,
		CreatedAt:      tstamp,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreatePayment(t *testing.T, repo payment.Repository, studentID int, amount float64, receipt string, paidAt time.Time) payment.Payment {
	t.Helper()

	pmt, err := repo.CreatePayment(context.Background(), payment.Payment{
		StudentID:     studentID,
		Amount:        amount,
		PaymentMethod: "Cash",
		ReceiptNumber: receipt,
		PaymentDate:   paidAt.UTC(),
		CreatedBy:     "admin",
	})
	if err != nil {
		t.Fatalf("CreatePayment() failed: %v", err)
	}
	return pmt
}
