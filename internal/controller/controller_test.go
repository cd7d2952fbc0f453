package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/session"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"
	"cyberedu_admin/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func stubBackend(t *testing.T, routes map[string]http.HandlerFunc) *upstream.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func withToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(session.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"upstream 4xx", &upstream.APIError{Status: http.StatusUnauthorized, Message: "Token expired"}, http.StatusUnauthorized, "Token expired"},
		{"upstream 5xx", &upstream.APIError{Status: http.StatusInternalServerError, Message: "boom"}, http.StatusBadGateway, "boom"},
		{"input", &service.InputError{Reason: "Please select exactly one correct answer"}, http.StatusBadRequest, "Please select exactly one correct answer"},
		{"transport", &upstream.TransportError{Op: "GET /x", Err: errors.New("refused")}, http.StatusBadGateway, "Backend unavailable"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "Backend request timed out"},
		{"status", util.ErrInvalidStatus, http.StatusBadRequest, util.ErrInvalidStatus.Error()},
		{"internal", errors.New("disk full"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode(t, w).Message)
		})
	}
}

func TestCreateQuestion_BindingRejectsTwoCorrect(t *testing.T) {
	called := false
	client := stubBackend(t, map[string]http.HandlerFunc{
		"/question-create/": func(w http.ResponseWriter, r *http.Request) { called = true },
	})
	ctrl := NewCourseController(service.NewCourseService(client))

	r := gin.New()
	r.POST("/courses/:id/questions", ctrl.CreateQuestion)

	body := `{"text":"Q","options":[{"text":"a","is_correct":true},{"text":"b","is_correct":true}]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/courses/3/questions", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please select exactly one correct answer", decode(t, w).Message)
	assert.False(t, called)
}

func TestCourseList_ForwardsToken(t *testing.T) {
	client := stubBackend(t, map[string]http.HandlerFunc{
		"/course-list/": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer admin", r.Header.Get("Authorization"))
			reply(http.StatusOK, `{"code":"200","data":[{"id":1,"course_name":"Phishing"}]}`)(w, r)
		},
	})
	ctrl := NewCourseController(service.NewCourseService(client))

	r := gin.New()
	r.GET("/courses", withToken("admin"), ctrl.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"course_name":"Phishing"`)
}

func TestUpstreamErrorPassesThrough(t *testing.T) {
	client := stubBackend(t, map[string]http.HandlerFunc{
		"/update-company-profile/": reply(http.StatusForbidden, `{"code":"403","message":"Not allowed"}`),
	})
	ctrl := NewCompanyController(service.NewCompanyService(client))

	r := gin.New()
	r.GET("/profile", ctrl.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not allowed", decode(t, w).Message)
}

func TestResults_InvalidID(t *testing.T) {
	ctrl := NewResultController(service.NewResultService(stubBackend(t, nil), 0))
	r := gin.New()
	r.GET("/users/:id/results", ctrl.Results)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/abc/results", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResults_ReportAndExport(t *testing.T) {
	client := stubBackend(t, map[string]http.HandlerFunc{
		"/superadmin/user/answers/8/": reply(http.StatusOK, `{"code":"200","data":[
			{"course_name":"A","isCorrect":true},{"course_name":"A","isCorrect":false},{"course_name":"B","isCorrect":true}]}`),
	})
	ctrl := NewResultController(service.NewResultService(client, 0))
	r := gin.New()
	r.GET("/users/:id/results", ctrl.Results)
	r.GET("/users/:id/results/export", ctrl.Export)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/8/results", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Report struct {
				Overall struct {
					Correct, Total, Percentage int
				} `json:"overall"`
				Band string `json:"band"`
			} `json:"report"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Report.Overall.Correct)
	assert.Equal(t, 67, body.Data.Report.Overall.Percentage)
	assert.Equal(t, "warning", body.Data.Report.Band)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/8/results/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, util.MimeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "results_user_8.xlsx")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestVerifyOTP_RequiresVerificationToken(t *testing.T) {
	ctrl := NewAuthController(service.NewAuthService(stubBackend(t, nil)))
	r := gin.New()
	r.POST("/auth/verify-otp", ctrl.VerifyOTP)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/verify-otp", strings.NewReader(`{"email":"a@b.io","otp":"1234"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	client := stubBackend(t, map[string]http.HandlerFunc{
		"/login/": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body["type"])
			reply(http.StatusOK, `{"code":"200","message":"Login successful","data":{"access_token":"jwt"}}`)(w, r)
		},
	})
	ctrl := NewAuthController(service.NewAuthService(client))
	r := gin.New()
	r.POST("/auth/login", ctrl.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.io","password":"pw"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, map[string]interface{}{"access_token": "jwt"}, resp.Data)
}

func TestHealthCheck(t *testing.T) {
	ok := NewHealthController(map[string]HealthCheck{
		"ffmpeg": func(context.Context) error { return nil },
	})
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	ok.HealthCheck(ctx)
	assert.Equal(t, http.StatusOK, w.Code)

	degraded := NewHealthController(map[string]HealthCheck{
		"ffmpeg": func(context.Context) error { return nil },
		"redis":  func(context.Context) error { return errors.New("connection refused") },
	})
	w = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	degraded.HealthCheck(ctx)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
