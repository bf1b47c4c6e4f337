package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/MohdShoeb1/institute-management-backend/apps/api/echo"
	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/core/stats"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	"github.com/MohdShoeb1/institute-management-backend/services/logger"
	"github.com/MohdShoeb1/institute-management-backend/storage/database/dummy"
	"github.com/MohdShoeb1/institute-management-backend/tests"
)

const testSecret = "s3cr3t-t3st-k3y"

type testEnv struct {
	app     *echoapi.Server
	auth    *echoapi.Authenticator
	usrRepo user.Repository
	crsRepo course.Repository
	stdRepo student.Repository
	pmtRepo payment.Repository
}

type downPinger struct{}

func (downPinger) PingContext(context.Context) error { return errors.New("connection refused") }

type envOption func(conf *core.Config, deps *echoapi.ServerDeps)

func withPinger(p core.Pinger) envOption {
	return func(_ *core.Config, deps *echoapi.ServerDeps) { deps.DB = p }
}

func withLoginRate(limit float64) envOption {
	return func(conf *core.Config, _ *echoapi.ServerDeps) { conf.LoginRateLimit = limit }
}

func setup(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	conf := &core.Config{
		AppName:            "institute-test",
		Env:                core.EnvDevelopment,
		SecretKey:          testSecret,
		JWTExpirationDelta: time.Hour,
		LoginRateLimit:     1000,
	}

	// set up DB & repos
	db, err := dummydb.Open()
	require.NoError(t, err)
	env := &testEnv{
		usrRepo: dummydb.NewUserRepository(db),
		crsRepo: dummydb.NewCourseRepository(db),
		stdRepo: dummydb.NewStudentRepository(db),
		pmtRepo: dummydb.NewPaymentRepository(db),
	}

	// set up services
	validate, translator := testutil.NewValidator()
	crsSvc := course.NewService(env.crsRepo, validate)
	deps := echoapi.ServerDeps{
		Conf:           conf,
		Translator:     translator,
		DB:             db,
		UserSvc:        user.NewService(env.usrRepo, validate),
		CourseSvc:      crsSvc,
		StudentSvc:     student.NewService(env.stdRepo, crsSvc, validate),
		PaymentSvc:     payment.NewService(env.pmtRepo, validate),
		StatsSvc:       stats.NewService(dummydb.NewStatsRepository(db)),
		DisableReqLogs: true,
	}
	for _, opt := range opts {
		opt(conf, &deps)
	}

	logger := logsvc.NewRollbarLogger(io.Discard, "API", conf)
	logger.Enable(false)
	deps.Logger = logger
	env.auth = echoapi.NewAuthenticator(conf)
	deps.Auth = env.auth

	// set up server
	env.app = echoapi.NewServer(deps)
	return env
}

type httpErr struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

// envelope decodes any of the API response shapes.
type envelope[T any] struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Errors   map[string]string `json:"errors"`
	Data     T                 `json:"data"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func (env *testEnv) serve(method, path, token string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(method, path, token, data...)
	env.app.ServeHTTP(rec, req)
	return rec
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, env *testEnv, usr user.User) string {
	t.Helper()
	token, err := env.auth.GenerateToken(usr)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

// adminAndClerk creates an admin and a regular user and returns their tokens.
func adminAndClerk(t *testing.T, env *testEnv) (adminToken, clerkToken string) {
	t.Helper()
	admin := testutil.CreateUser(t, env.usrRepo, "admin", "admin-pwd", user.RoleAdmin)
	clerk := testutil.CreateUser(t, env.usrRepo, "clerk", "clerk-pwd", user.RoleUser)
	return getToken(t, env, admin), getToken(t, env, clerk)
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode() failed: %v; body %s", err, rec.Body.String())
	}
	return env
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, env *testEnv, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			checkCodeAndData(t, tt, env.serve(method, tt.path, tt.token, tt.body))
		})
	}
}

func jsonUnmarshalRec(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
