package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursetrack/apperror"
	"coursetrack/database"
	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestServer(t *testing.T, rateLimit int) *testServer {
	t.Helper()
	db, err := database.OpenInMemory(nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	repo := repository.New(db, repository.Options{
		BcryptCost:        bcrypt.MinCost,
		RequireCompletion: true,
		EnforceTimeLimit:  true,
	})
	app := NewApp(Deps{
		Repo:          repo,
		Auth:          middleware.NewAuth("test-secret", time.Hour),
		AuthRateLimit: rateLimit,
	})
	return &testServer{app: app, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func decode(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v), string(env.Data))
}

// signup registers a user and returns its token and id.
func (s *testServer) signup(t *testing.T, username string) (string, uint) {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username":        username,
		"email":           username + "@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, env, &out)
	require.NotEmpty(t, out.Token)
	return out.Token, out.User.ID
}

func (s *testServer) promote(t *testing.T, userID uint, role string) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error)
}

// publishedCourse creates a published course with n lessons as a staff user.
func (s *testServer) publishedCourse(t *testing.T, staffToken, title string, n int) (models.Course, []models.Lesson) {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/courses", staffToken, map[string]interface{}{
		"title":       title,
		"description": "A course about " + title,
		"category":    "Programming",
		"level":       models.LevelBeginner,
		"published":   true,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var course models.Course
	decode(t, env, &course)

	lessons := make([]models.Lesson, 0, n)
	for i := 1; i <= n; i++ {
		status, env := s.do(t, http.MethodPost, fmt.Sprintf("/api/courses/%d/lessons", course.ID), staffToken, map[string]interface{}{
			"title":    fmt.Sprintf("%s lesson %d", title, i),
			"videoUrl": fmt.Sprintf("https://videos.example.com/%d", i),
			"order":    i,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
		var lesson models.Lesson
		decode(t, env, &lesson)
		lessons = append(lessons, lesson)
	}
	return course, lessons
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	token, _ := s.signup(t, "alice")

	t.Run("duplicate username", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "alice", "password": "password123", "confirmPassword": "password123",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.False(t, env.Status)
	})

	t.Run("password mismatch", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "bob", "password": "password123", "confirmPassword": "password124",
		})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		var fields []apperror.FieldError
		decode(t, env, &fields)
		require.Len(t, fields, 1)
		assert.Equal(t, "confirmPassword", fields[0].Field)
	})

	t.Run("login", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "wrong-password"})
		assert.Equal(t, http.StatusUnauthorized, status)

		status, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "password123"})
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"token"`)
	})

	t.Run("me", func(t *testing.T) {
		status, _ := s.do(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)

		status, _ = s.do(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, status)

		status, env := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, status)
		var user models.User
		decode(t, env, &user)
		assert.Equal(t, "alice", user.Username)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("update profile", func(t *testing.T) {
		status, env := s.do(t, http.MethodPut, "/api/auth/me", token, map[string]string{"firstName": "Alice", "bio": "Learning Go"})
		require.Equal(t, http.StatusOK, status, env.Message)
		var user models.User
		decode(t, env, &user)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "Learning Go", user.Bio)
	})
}

func TestDraftCoursesHidden(t *testing.T) {
	s := newTestServer(t, 0)
	staffToken, staffID := s.signup(t, "instructor")
	s.promote(t, staffID, models.RoleInstructor)
	studentToken, _ := s.signup(t, "student")

	status, env := s.do(t, http.MethodPost, "/api/courses", staffToken, map[string]interface{}{
		"title":       "Draft",
		"description": "Not ready yet",
		"category":    "Programming",
		"level":       models.LevelBeginner,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var course models.Course
	decode(t, env, &course)
	require.False(t, course.Published)

	status, env = s.do(t, http.MethodPost, fmt.Sprintf("/api/courses/%d/lessons", course.ID), staffToken, map[string]interface{}{
		"title": "Draft lesson", "videoUrl": "https://videos.example.com/draft", "order": 1,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var lesson models.Lesson
	decode(t, env, &lesson)

	paths := []string{
		fmt.Sprintf("/api/courses/%d", course.ID),
		fmt.Sprintf("/api/courses/%d/lessons", course.ID),
		fmt.Sprintf("/api/lessons/%d", lesson.ID),
	}
	for _, path := range paths {
		status, _ := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, status, "anonymous %s", path)

		status, _ = s.do(t, http.MethodGet, path, studentToken, nil)
		assert.Equal(t, http.StatusNotFound, status, "student %s", path)

		status, env := s.do(t, http.MethodGet, path, staffToken, nil)
		assert.Equal(t, http.StatusOK, status, "staff %s: %s", path, env.Message)
	}

	status, env = s.do(t, http.MethodPost, "/api/enrollments", studentToken, map[string]uint{"courseId": course.ID})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, repository.ErrCourseNotFound.Error(), env.Message)
}

func TestCourseRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	staffToken, staffID := s.signup(t, "instructor")
	s.promote(t, staffID, models.RoleInstructor)
	studentToken, _ := s.signup(t, "student")

	t.Run("students cannot author", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPost, "/api/courses", studentToken, map[string]interface{}{
			"title": "Nope", "description": "Not allowed", "category": "Programming", "level": "beginner",
		})
		assert.Equal(t, http.StatusForbidden, status)
	})

	course, lessons := s.publishedCourse(t, staffToken, "Go Basics", 3)
	assert.Equal(t, 3, len(lessons))

	t.Run("lookup", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), "", nil)
		require.Equal(t, http.StatusOK, status)
		var got models.Course
		decode(t, env, &got)
		assert.Equal(t, 3, got.LessonCount)

		status, _ = s.do(t, http.MethodGet, "/api/courses/9999", "", nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = s.do(t, http.MethodGet, "/api/courses/abc", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("lessons are ordered", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/courses/%d/lessons", course.ID), "", nil)
		require.Equal(t, http.StatusOK, status)
		var got []models.Lesson
		decode(t, env, &got)
		require.Len(t, got, 3)
		for i, l := range got {
			assert.Equal(t, i+1, l.Order)
		}
	})

	t.Run("duplicate lesson order", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPost, fmt.Sprintf("/api/courses/%d/lessons", course.ID), staffToken, map[string]interface{}{
			"title": "Again", "videoUrl": "https://videos.example.com/again", "order": 1,
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	listed := func(token string) []models.CourseListItem {
		status, env := s.do(t, http.MethodGet, "/api/courses", token, nil)
		require.Equal(t, http.StatusOK, status)
		var items []models.CourseListItem
		decode(t, env, &items)
		return items
	}

	items := listed("")
	require.Len(t, items, 1)
	assert.False(t, items[0].IsEnrolled)

	status, env := s.do(t, http.MethodPost, "/api/enrollments", studentToken, map[string]uint{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, status, env.Message)

	items = listed(studentToken)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsEnrolled)

	t.Run("enroll twice", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/enrollments", studentToken, map[string]uint{"courseId": course.ID})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, repository.ErrAlreadyEnrolled.Error(), env.Message)
	})

	t.Run("enrollment reads", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/enrollments", studentToken, nil)
		require.Equal(t, http.StatusOK, status)
		var enrollments []models.Enrollment
		decode(t, env, &enrollments)
		require.Len(t, enrollments, 1)
		require.NotNil(t, enrollments[0].Course)
		assert.Equal(t, "Go Basics", enrollments[0].Course.Title)

		status, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/enrollments/%d", course.ID), studentToken, nil)
		assert.Equal(t, http.StatusOK, status)

		status, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/enrollments/%d", course.ID), staffToken, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = s.do(t, http.MethodGet, "/api/enrollments", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("delete needs admin", func(t *testing.T) {
		path := fmt.Sprintf("/api/courses/%d", course.ID)
		status, _ := s.do(t, http.MethodDelete, path, staffToken, nil)
		assert.Equal(t, http.StatusForbidden, status)

		s.promote(t, staffID, models.RoleAdmin)
		status, _ = s.do(t, http.MethodDelete, path, staffToken, nil)
		assert.Equal(t, http.StatusOK, status)

		status, _ = s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Empty(t, listed(studentToken))
	})
}

func TestProgressAndCertificateRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	staffToken, staffID := s.signup(t, "instructor")
	s.promote(t, staffID, models.RoleInstructor)
	token, _ := s.signup(t, "learner")

	course, lessons := s.publishedCourse(t, staffToken, "Databases", 2)
	status, _ := s.do(t, http.MethodPost, "/api/enrollments", token, map[string]uint{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, status)

	t.Run("validation", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/progress", token, map[string]interface{}{
			"courseId": course.ID, "lessonId": lessons[0].ID, "progress": 150,
		})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		var fields []apperror.FieldError
		decode(t, env, &fields)
		require.Len(t, fields, 1)
		assert.Equal(t, "progress", fields[0].Field)

		status, _ = s.do(t, http.MethodGet, "/api/progress/recent?limit=0", token, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	status, env := s.do(t, http.MethodPost, "/api/progress", token, map[string]interface{}{
		"courseId": course.ID, "lessonId": lessons[0].ID, "progress": 40,
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	var record models.UserProgress
	decode(t, env, &record)
	assert.Equal(t, 40, record.Progress)
	assert.False(t, record.Completed)

	status, env = s.do(t, http.MethodPost, "/api/certificates/issue", token, map[string]uint{"courseId": course.ID})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, repository.ErrCourseIncomplete.Error(), env.Message)

	for _, l := range lessons {
		status, env := s.do(t, http.MethodPost, fmt.Sprintf("/api/progress/lesson/%d/complete", l.ID), token, nil)
		require.Equal(t, http.StatusOK, status, env.Message)
		decode(t, env, &record)
		assert.True(t, record.Completed)
		assert.Equal(t, 100, record.Progress)
	}

	t.Run("course progress", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/progress/course/%d", course.ID), token, nil)
		require.Equal(t, http.StatusOK, status)
		var out struct {
			Progress   []models.UserProgress `json:"progress"`
			Completion repository.Completion `json:"completion"`
		}
		decode(t, env, &out)
		assert.Len(t, out.Progress, 2)
		assert.Equal(t, 100, out.Completion.Percentage)
		assert.True(t, out.Completion.IsComplete)
	})

	t.Run("lesson progress", func(t *testing.T) {
		status, _ := s.do(t, http.MethodGet, fmt.Sprintf("/api/progress/lesson/%d", lessons[1].ID), token, nil)
		assert.Equal(t, http.StatusOK, status)

		other, _ := s.signup(t, "stranger")
		status, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/progress/lesson/%d", lessons[1].ID), other, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("recent", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/progress/recent?limit=1", token, nil)
		require.Equal(t, http.StatusOK, status)
		var recent []models.RecentLesson
		decode(t, env, &recent)
		require.Len(t, recent, 1)
		assert.Equal(t, "Databases", recent[0].CourseTitle)

		status, env = s.do(t, http.MethodGet, "/api/progress", token, nil)
		require.Equal(t, http.StatusOK, status)
		var all []models.UserProgress
		decode(t, env, &all)
		assert.Len(t, all, 2)
	})

	status, env = s.do(t, http.MethodPost, "/api/certificates/issue", token, map[string]uint{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var cert models.Certificate
	decode(t, env, &cert)
	assert.Len(t, cert.CertificateCode, 32)

	status, _ = s.do(t, http.MethodPost, "/api/certificates/issue", token, map[string]uint{"courseId": course.ID})
	assert.Equal(t, http.StatusBadRequest, status)

	t.Run("verify is public", func(t *testing.T) {
		status, env := s.do(t, http.MethodPost, "/api/certificates/verify", "", map[string]string{"code": cert.CertificateCode})
		require.Equal(t, http.StatusOK, status)
		var view models.CertificateView
		decode(t, env, &view)
		assert.Equal(t, "learner", view.User.Username)
		assert.Equal(t, "Databases", view.Course.Title)
		assert.NotContains(t, string(env.Data), "learner@example.com")

		status, _ = s.do(t, http.MethodPost, "/api/certificates/verify", "", map[string]string{"code": "deadbeef"})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("list", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, "/api/certificates", token, nil)
		require.Equal(t, http.StatusOK, status)
		var certs []models.CertificateWithCourse
		decode(t, env, &certs)
		require.Len(t, certs, 1)
		assert.Equal(t, "Databases", certs[0].CourseTitle)
	})
}

func TestQuizRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	staffToken, staffID := s.signup(t, "instructor")
	s.promote(t, staffID, models.RoleInstructor)
	token, _ := s.signup(t, "learner")
	otherToken, _ := s.signup(t, "peeker")

	course, lessons := s.publishedCourse(t, staffToken, "Networking", 1)

	status, env := s.do(t, http.MethodPost, fmt.Sprintf("/api/courses/%d/quizzes", course.ID), staffToken, map[string]interface{}{
		"lessonId": lessons[0].ID,
		"title":    "Networking check",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var quiz models.Quiz
	decode(t, env, &quiz)
	assert.Equal(t, 70, quiz.PassingScore)

	questionsPath := fmt.Sprintf("/api/quizzes/%d/questions", quiz.ID)
	status, _ = s.do(t, http.MethodPost, questionsPath, staffToken, map[string]interface{}{
		"question": "Which layer does TCP live in?", "type": models.QuestionMultipleChoice,
		"options": []string{"Transport", "Network"}, "correctAnswer": "Session",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = s.do(t, http.MethodPost, questionsPath, staffToken, map[string]interface{}{
		"question": "Which layer does TCP live in?", "type": models.QuestionMultipleChoice,
		"options": []string{"Transport", "Network"}, "correctAnswer": "Transport", "order": 1,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var q1 models.QuizQuestion
	decode(t, env, &q1)

	status, env = s.do(t, http.MethodPost, questionsPath, staffToken, map[string]interface{}{
		"question": "UDP is connection oriented.", "type": models.QuestionTrueFalse,
		"correctAnswer": "false", "points": 3, "order": 2,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var q2 models.QuizQuestion
	decode(t, env, &q2)

	t.Run("listings", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/courses/%d/quizzes", course.ID), "", nil)
		require.Equal(t, http.StatusOK, status)
		var quizzes []models.Quiz
		decode(t, env, &quizzes)
		assert.Len(t, quizzes, 1)

		status, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/lessons/%d/quizzes", lessons[0].ID), "", nil)
		require.Equal(t, http.StatusOK, status)
		decode(t, env, &quizzes)
		assert.Len(t, quizzes, 1)
	})

	t.Run("answers stay hidden", func(t *testing.T) {
		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", quiz.ID), "", nil)
		require.Equal(t, http.StatusOK, status)
		assert.NotContains(t, string(env.Data), "correctAnswer")
		assert.Contains(t, string(env.Data), "Which layer does TCP live in?")
	})

	status, env = s.do(t, http.MethodPost, fmt.Sprintf("/api/quizzes/%d/attempts", quiz.ID), token, nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var attempt models.QuizAttempt
	decode(t, env, &attempt)
	assert.False(t, attempt.Completed)

	attemptPath := fmt.Sprintf("/api/quiz-attempts/%d", attempt.ID)

	t.Run("other users cannot see the attempt", func(t *testing.T) {
		status, _ := s.do(t, http.MethodGet, attemptPath, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = s.do(t, http.MethodPost, attemptPath+"/submit", otherToken, map[string]interface{}{"answers": []interface{}{}})
		assert.Equal(t, http.StatusNotFound, status)
	})

	answers := map[string]interface{}{
		"answers": []map[string]interface{}{
			{"questionId": q1.ID, "userAnswer": "Transport"},
			{"questionId": q2.ID, "userAnswer": "true"},
		},
	}
	status, env = s.do(t, http.MethodPost, attemptPath+"/submit", token, answers)
	require.Equal(t, http.StatusOK, status, env.Message)
	decode(t, env, &attempt)
	assert.True(t, attempt.Completed)
	assert.Equal(t, 25, attempt.Score)
	assert.False(t, attempt.Passed)
	assert.Len(t, attempt.Answers, 2)

	status, _ = s.do(t, http.MethodPost, attemptPath+"/submit", token, answers)
	assert.Equal(t, http.StatusBadRequest, status)

	t.Run("attempt reads", func(t *testing.T) {
		status, _ := s.do(t, http.MethodGet, attemptPath, token, nil)
		assert.Equal(t, http.StatusOK, status)

		status, env := s.do(t, http.MethodGet, fmt.Sprintf("/api/quizzes/%d/attempts", quiz.ID), token, nil)
		require.Equal(t, http.StatusOK, status)
		var attempts []models.QuizAttempt
		decode(t, env, &attempts)
		assert.Len(t, attempts, 1)

		status, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/quizzes/%d/attempts", quiz.ID), otherToken, nil)
		require.Equal(t, http.StatusOK, status)
		decode(t, env, &attempts)
		assert.Empty(t, attempts)
	})
}

func TestAppEdges(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		s := newTestServer(t, 0)
		status, env := s.do(t, http.MethodGet, "/api/nowhere", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, env.Status)
	})

	t.Run("request id", func(t *testing.T) {
		s := newTestServer(t, 0)
		resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/levels", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("login rate limit", func(t *testing.T) {
		s := newTestServer(t, 2)
		body := map[string]string{"username": "ghost", "password": "whatever"}
		for i := 0; i < 2; i++ {
			status, _ := s.do(t, http.MethodPost, "/api/auth/login", "", body)
			assert.Equal(t, http.StatusUnauthorized, status)
		}
		status, _ := s.do(t, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusTooManyRequests, status)
	})
}
