package echoapi_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/tests"
)

func Test_studentApi_create(t *testing.T) {
	env := setup(t)
	_, token := adminAndClerk(t, env)
	testutil.CreateCourse(t, env.crsRepo, "CCC", "3 Months", 3600)

	t.Run("Auth required", func(t *testing.T) {
		rec := env.serve(http.MethodPost, "/api/students", "", []byte(`{"name":"Asha","course":"CCC"}`))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is missing", decode[any](t, rec).Message)
	})

	t.Run("Missing name", func(t *testing.T) {
		rec := env.serve(http.MethodPost, "/api/students", token, []byte(`{"course":"CCC"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[any](t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "name is required", resp.Errors["name"])
	})

	t.Run("Unknown course", func(t *testing.T) {
		rec := env.serve(http.MethodPost, "/api/students", token, []byte(`{"name":"Asha","course":"Rocketry"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[any](t, rec)
		assert.Equal(t, "Course 'Rocketry' not found. Cannot determine fee.", resp.Message)
		assert.Contains(t, resp.Errors, "course")
	})

	t.Run("Bad date", func(t *testing.T) {
		rec := env.serve(http.MethodPost, "/api/students", token, []byte(`{"name":"Asha","course":"CCC","dob":"someday"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decode[any](t, rec).Success)
	})

	t.Run("Course fee by default", func(t *testing.T) {
		body := []byte(`{
			"name": "Asha", "course": "CCC", "dob": "2001-02-03", "discount": "600",
			"phone": "9990001111", "status": "Completed", "paid_amount": 3000
		}`)
		rec := env.serve(http.MethodPost, "/api/students", token, body)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[student.Student](t, rec)
		assert.True(t, resp.Success)
		std := resp.Data
		assert.NotZero(t, std.ID)
		assert.Equal(t, 3600.0, std.TotalFee)
		assert.Equal(t, 600.0, std.Discount)
		assert.Zero(t, std.PaidAmount)
		assert.Equal(t, student.StatusActive, std.Status)
		assert.Equal(t, student.StatusActive, std.CalculatedStatus)
		assert.Equal(t, "2001-02-03", std.DOB.Time.Time.Format("2006-01-02"))
		assert.Equal(t, "9990001111", std.Phone.String)
		assert.WithinDuration(t, time.Now(), std.EnrollmentDate, time.Minute)
	})

	t.Run("Explicit fee & enrollment date", func(t *testing.T) {
		body := []byte(`{"name":"Ravi","course":"CCC","total_fee":5000,"enrollment_date":"2020-01-15"}`)
		rec := env.serve(http.MethodPost, "/api/students", token, body)
		require.Equal(t, http.StatusOK, rec.Code)

		std := decode[student.Student](t, rec).Data
		assert.Equal(t, 5000.0, std.TotalFee)
		assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), std.EnrollmentDate.UTC())
		assert.Equal(t, student.StatusInactive, std.CalculatedStatus) // 3 months have long passed
	})
}

func Test_studentApi_query(t *testing.T) {
	env := setup(t)
	_, token := adminAndClerk(t, env)
	testutil.CreateCourse(t, env.crsRepo, "CCC", "3 Months", 3600)

	recent := time.Now().UTC().Add(-24 * time.Hour)
	old := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	active := testutil.CreateStudent(t, env.stdRepo, "Active", "CCC", 3600, 0, recent)
	inactive := testutil.CreateStudent(t, env.stdRepo, "Inactive", "CCC", 3600, 0, old)
	completed := testutil.CreateStudent(t, env.stdRepo, "Completed", "CCC", 3600, 600, old)
	testutil.CreatePayment(t, env.pmtRepo, completed.ID, 3000, "RCP-20190101-00000001", old)
	dropped := testutil.CreateStudent(t, env.stdRepo, "Dropped", "CCC", 3600, 0, recent)
	require.NoError(t, env.stdRepo.UpdateStudentStatus(context.Background(), dropped.ID, student.StatusDropped))
	orphan := testutil.CreateStudent(t, env.stdRepo, "Orphan", "Gone", 1000, 0, old)

	t.Run("Computed statuses", func(t *testing.T) {
		rec := env.serve(http.MethodGet, "/api/students", token)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[[]student.Student](t, rec)
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, core.DefaultPage, resp.Page)
		assert.Equal(t, core.DefaultPageSize, resp.PageSize)

		want := map[int]string{
			active.ID:    student.StatusActive,
			inactive.ID:  student.StatusInactive,
			completed.ID: student.StatusCompleted,
			dropped.ID:   student.StatusDropped,
			orphan.ID:    student.StatusActive, // no course, no duration rule
		}
		require.Len(t, resp.Data, len(want))
		for i, std := range resp.Data {
			if i > 0 {
				assert.Less(t, resp.Data[i-1].ID, std.ID)
			}
			assert.Equal(t, want[std.ID], std.CalculatedStatus, std.Name)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		tests := []struct {
			path         string
			wantPage     int
			wantPageSize int
			wantLen      int
		}{
			{path: "/api/students?page=1&page_size=2", wantPage: 1, wantPageSize: 2, wantLen: 2},
			{path: "/api/students?page=3&page_size=2", wantPage: 3, wantPageSize: 2, wantLen: 1},
			{path: "/api/students?page=4&page_size=2", wantPage: 4, wantPageSize: 2, wantLen: 0},
			{path: "/api/students?page=0&page_size=-1", wantPage: core.DefaultPage, wantPageSize: core.DefaultPageSize, wantLen: 5},
			{path: "/api/students?page_size=1000000000", wantPage: 1, wantPageSize: core.MaxPageSize, wantLen: 5},
		}
		for _, tt := range tests {
			t.Run(tt.path, func(t *testing.T) {
				rec := env.serve(http.MethodGet, tt.path, token)
				require.Equal(t, http.StatusOK, rec.Code)
				resp := decode[[]student.Student](t, rec)
				assert.Equal(t, tt.wantPage, resp.Page)
				assert.Equal(t, tt.wantPageSize, resp.PageSize)
				assert.Equal(t, 5, resp.Total)
				assert.Len(t, resp.Data, tt.wantLen)
				assert.NotNil(t, resp.Data)
			})
		}
	})

	t.Run("Page too large", func(t *testing.T) {
		rec := env.serve(http.MethodGet, "/api/students?page=4611686018427387904&page_size=4", token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[any](t, rec)
		assert.Equal(t, "Invalid pagination parameters", resp.Message)
		assert.Equal(t, "must be at most 100000", resp.Errors["page"])
	})

	t.Run("Non numeric page", func(t *testing.T) {
		rec := env.serve(http.MethodGet, "/api/students?page=abc", token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[any](t, rec).Errors, "page")
	})
}

func Test_studentApi_destroy(t *testing.T) {
	env := setup(t)
	_, token := adminAndClerk(t, env)
	std := testutil.CreateStudent(t, env.stdRepo, "Asha", "CCC", 3600, 0)
	other := testutil.CreateStudent(t, env.stdRepo, "Ravi", "CCC", 3600, 0)
	testutil.CreatePayment(t, env.pmtRepo, std.ID, 100, "RCP-20240101-AAAAAAAA", time.Now())
	keep := testutil.CreatePayment(t, env.pmtRepo, other.ID, 100, "RCP-20240101-BBBBBBBB", time.Now())

	tests := []httpTest{
		{
			name: "Bad id", method: http.MethodDelete, path: "/api/students/abc", token: token,
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"success":false,"message":"Invalid ID","errors":{"id":"must be an integer"}}`),
		},
		{
			name: "Unknown", method: http.MethodDelete, path: "/api/students/9999", token: token,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Message: "Student not found"}),
		},
		{
			name: "Delete", method: http.MethodDelete, path: fmt.Sprintf("/api/students/%d", std.ID), token: token,
			wantCode: http.StatusOK, wantData: []byte(`{"success":true,"message":"Student deleted successfully"}`),
		},
		{
			name: "Deleted", method: http.MethodDelete, path: fmt.Sprintf("/api/students/%d", std.ID), token: token,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Message: "Student not found"}),
		},
	}
	runHTTPTests(t, env, tests)

	// payments of the deleted student are gone too
	pmts, total, err := env.pmtRepo.QueryPayments(context.Background(), core.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, keep.ID, pmts[0].ID)
}

func Test_studentApi_setStatus(t *testing.T) {
	env := setup(t)
	_, token := adminAndClerk(t, env)
	std := testutil.CreateStudent(t, env.stdRepo, "Asha", "CCC", 3600, 0)
	path := fmt.Sprintf("/api/students/%d/status", std.ID)

	tests := []httpTest{
		{
			name: "Status required", method: http.MethodPut, path: path, token: token, body: []byte(`{"status":""}`),
			wantCode: http.StatusBadRequest, wantData: marshalObj(t, httpErr{Message: "Status is required"}),
		},
		{
			name: "Unknown", method: http.MethodPut, path: "/api/students/9999/status", token: token, body: []byte(`{"status":"Dropped"}`),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Message: "Student not found"}),
		},
		{
			name: "Update", method: http.MethodPut, path: path, token: token, body: []byte(`{"status":"On Hold"}`),
			wantCode: http.StatusOK, wantData: []byte(`{"success":true,"message":"Student status updated successfully"}`),
		},
	}
	runHTTPTests(t, env, tests)

	got, err := env.stdRepo.GetStudentByID(context.Background(), std.ID)
	require.NoError(t, err)
	assert.Equal(t, "On Hold", got.Status) // stored verbatim
}
