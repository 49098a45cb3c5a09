package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursetrack/database"
	"coursetrack/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setup(t *testing.T, opts ...Options) (*Repository, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	db, err := database.OpenInMemory(clock.Now)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	o := Options{BcryptCost: bcrypt.MinCost, RequireCompletion: true, EnforceTimeLimit: true}
	if len(opts) > 0 {
		o = opts[0]
		o.BcryptCost = bcrypt.MinCost
	}
	return New(db, o), clock
}

func createUser(t *testing.T, repo *Repository, username string) models.User {
	t.Helper()
	usr, err := repo.Signup(context.Background(), NewUser{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return usr
}

// createCourse stores a published course with the given number of lessons.
func createCourse(t *testing.T, repo *Repository, title string, lessons int) (models.Course, []models.Lesson) {
	t.Helper()
	ctx := context.Background()
	course, err := repo.CreateCourse(ctx, models.Course{
		Title:       title,
		Description: title + " description",
		Category:    "Programming",
		Level:       models.LevelBeginner,
		Published:   true,
	})
	require.NoError(t, err)

	out := make([]models.Lesson, 0, lessons)
	for i := 1; i <= lessons; i++ {
		lesson, err := repo.CreateLesson(ctx, models.Lesson{
			CourseID: course.ID,
			Title:    title + " lesson",
			VideoURL: "https://videos.example.com/" + title,
			Order:    i,
		})
		require.NoError(t, err)
		out = append(out, lesson)
	}
	return course, out
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

// afterQuery runs fn once, right after the nth query against table has
// returned. fn gets the querying handle, so writes through a NewDB session of
// it land in the same transaction. It lets tests slip a conflicting row in
// between a uniqueness check and the insert that follows it.
func afterQuery(t *testing.T, repo *Repository, table string, nth int, fn func(db *gorm.DB)) {
	t.Helper()
	seen := 0
	err := repo.db.Callback().Query().After("gorm:query").Register("test:after_query", func(db *gorm.DB) {
		if db.Statement.Schema == nil || db.Statement.Schema.Table != table {
			return
		}
		seen++
		if seen == nth {
			fn(db)
		}
	})
	require.NoError(t, err)
}
