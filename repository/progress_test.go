package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkComplete(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	course, lessons := createCourse(t, repo, "go", 2)

	record, err := repo.MarkComplete(ctx, usr.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	assert.Equal(t, 100, record.Progress)
	assert.Equal(t, course.ID, record.CourseID)
	require.NotNil(t, record.LastViewed)

	records, err := repo.CourseProgress(ctx, usr.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, lessons[0].ID, records[0].LessonID)

	_, err = repo.MarkComplete(ctx, usr.ID, 404)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestUpsertProgressIdempotent(t *testing.T) {
	repo, clock := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	course, lessons := createCourse(t, repo, "go", 1)
	upd := ProgressUpdate{UserID: usr.ID, CourseID: course.ID, LessonID: lessons[0].ID, Progress: intPtr(40)}

	first, err := repo.UpsertProgress(ctx, upd)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := repo.UpsertProgress(ctx, upd)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Progress, second.Progress)
	assert.Equal(t, first.Completed, second.Completed)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	records, err := repo.UserProgress(ctx, usr.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpsertProgressNormalizesCompletion(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	course, lessons := createCourse(t, repo, "go", 3)

	tests := []struct {
		name          string
		lesson        uint
		completed     *bool
		progress      *int
		wantCompleted bool
		wantProgress  int
	}{
		{name: "completed forces 100", lesson: lessons[0].ID, completed: boolPtr(true), progress: intPtr(30), wantCompleted: true, wantProgress: 100},
		{name: "100 implies completed", lesson: lessons[1].ID, progress: intPtr(100), wantCompleted: true, wantProgress: 100},
		{name: "viewed only", lesson: lessons[2].ID, wantProgress: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := repo.UpsertProgress(ctx, ProgressUpdate{
				UserID:    usr.ID,
				CourseID:  course.ID,
				LessonID:  tt.lesson,
				Completed: tt.completed,
				Progress:  tt.progress,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompleted, record.Completed)
			assert.Equal(t, tt.wantProgress, record.Progress)

			stored, err := repo.LessonProgress(ctx, usr.ID, tt.lesson)
			require.NoError(t, err)
			assert.Equal(t, record.Progress, stored.Progress)
		})
	}
}

func TestUpsertProgressLessonMustBelongToCourse(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	_, goLessons := createCourse(t, repo, "go", 1)
	rust, _ := createCourse(t, repo, "rust", 1)

	_, err := repo.UpsertProgress(ctx, ProgressUpdate{UserID: usr.ID, CourseID: rust.ID, LessonID: goLessons[0].ID})
	assert.ErrorIs(t, err, ErrLessonCourseMismatch)

	_, err = repo.LessonProgress(ctx, usr.ID, goLessons[0].ID)
	assert.ErrorIs(t, err, ErrProgressNotFound)
}

func TestRecentlyViewed(t *testing.T) {
	repo, clock := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	course, lessons := createCourse(t, repo, "go", 3)

	// T1 < T2 < T3
	for _, l := range lessons {
		clock.Advance(time.Minute)
		_, err := repo.UpsertProgress(ctx, ProgressUpdate{UserID: usr.ID, CourseID: course.ID, LessonID: l.ID, Progress: intPtr(10)})
		require.NoError(t, err)
	}

	recent, err := repo.RecentlyViewed(ctx, usr.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, lessons[2].ID, recent[0].ID)
	assert.Equal(t, lessons[1].ID, recent[1].ID)
	assert.Equal(t, "go", recent[0].CourseTitle)
	assert.Equal(t, 10, recent[0].Progress)

	all, err := repo.RecentlyViewed(ctx, usr.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	other := createUser(t, repo, "bob")
	none, err := repo.RecentlyViewed(ctx, other.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestComputeCompletion(t *testing.T) {
	tests := []struct {
		completed, total int
		wantPct          int
		wantComplete     bool
	}{
		{0, 0, 0, false},
		{0, 3, 0, false},
		{1, 3, 33, false},
		{2, 3, 67, false},
		{3, 3, 100, true},
		{1, 1, 100, true},
	}
	for _, tt := range tests {
		pct, done := ComputeCompletion(tt.completed, tt.total)
		assert.Equal(t, tt.wantPct, pct, "%d/%d", tt.completed, tt.total)
		assert.Equal(t, tt.wantComplete, done, "%d/%d", tt.completed, tt.total)
	}
}

func TestCourseCompletionUpdatesEnrollment(t *testing.T) {
	repo, clock := setup(t)
	ctx := context.Background()
	usr := createUser(t, repo, "alice")
	course, lessons := createCourse(t, repo, "go", 2)
	_, err := repo.Enroll(ctx, usr.ID, course.ID)
	require.NoError(t, err)

	_, err = repo.MarkComplete(ctx, usr.ID, lessons[0].ID)
	require.NoError(t, err)
	c, err := repo.CourseCompletion(ctx, usr.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, Completion{CourseID: course.ID, CompletedLessons: 1, TotalLessons: 2, Percentage: 50}, c)

	enrollment, err := repo.GetEnrollment(ctx, usr.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)

	clock.Advance(time.Hour)
	_, err = repo.MarkComplete(ctx, usr.ID, lessons[1].ID)
	require.NoError(t, err)

	enrollment, err = repo.GetEnrollment(ctx, usr.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, enrollment.Progress)
	require.NotNil(t, enrollment.CompletedAt)
	assert.True(t, enrollment.CompletedAt.Equal(clock.Now()))

	_, err = repo.CourseCompletion(ctx, usr.ID, 404)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
