package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"coursetrack/models"
)

// CreateQuiz stores a quiz under its course and bumps the course quiz count.
// A lesson scoped quiz must reference a lesson of the same course.
func (r *Repository) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	quiz.ID = 0
	quiz.Questions = nil
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getCourse(tx, quiz.CourseID); err != nil {
			return err
		}
		if quiz.LessonID != nil {
			lesson, err := getLesson(tx, *quiz.LessonID)
			if err != nil {
				return err
			}
			if lesson.CourseID != quiz.CourseID {
				return ErrLessonCourseMismatch
			}
		}
		if err := tx.Create(&quiz).Error; err != nil {
			return fmt.Errorf("repository.CreateQuiz: %w", err)
		}
		// lesson scoped quizzes count too, matching ListCourseQuizzes
		return tx.Model(&models.Course{}).Where("id = ?", quiz.CourseID).
			Update("quiz_count", gorm.Expr("quiz_count + ?", 1)).Error
	})
	if err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

// GetQuiz returns the quiz with its questions in order.
func (r *Repository) GetQuiz(ctx context.Context, id uint) (models.Quiz, error) {
	return getQuiz(r.conn(ctx), id)
}

func getQuiz(db *gorm.DB, id uint) (models.Quiz, error) {
	var quiz models.Quiz
	err := db.Preload("Questions", func(q *gorm.DB) *gorm.DB {
		return q.Order("question_order asc, id asc")
	}).First(&quiz, id).Error
	if err != nil {
		if isNotFound(err) {
			return models.Quiz{}, ErrQuizNotFound
		}
		return models.Quiz{}, fmt.Errorf("repository.getQuiz: %w", err)
	}
	return quiz, nil
}

func (r *Repository) ListCourseQuizzes(ctx context.Context, courseID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.conn(ctx).Where("course_id = ?", courseID).Order("id asc").Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("repository.ListCourseQuizzes: %w", err)
	}
	return quizzes, nil
}

func (r *Repository) ListLessonQuizzes(ctx context.Context, lessonID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.conn(ctx).Where("lesson_id = ?", lessonID).Order("id asc").Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("repository.ListLessonQuizzes: %w", err)
	}
	return quizzes, nil
}

// CreateQuestion appends a question to a quiz.
func (r *Repository) CreateQuestion(ctx context.Context, question models.QuizQuestion) (models.QuizQuestion, error) {
	question.ID = 0
	db := r.conn(ctx)
	if ok, err := exists(db.Model(&models.Quiz{}).Where("id = ?", question.QuizID)); err != nil {
		return models.QuizQuestion{}, fmt.Errorf("repository.CreateQuestion: %w", err)
	} else if !ok {
		return models.QuizQuestion{}, ErrQuizNotFound
	}
	if question.Points == 0 {
		question.Points = 1
	}
	if err := db.Create(&question).Error; err != nil {
		return models.QuizQuestion{}, fmt.Errorf("repository.CreateQuestion: %w", err)
	}
	return question, nil
}

// StartAttempt opens a new attempt for the user.
func (r *Repository) StartAttempt(ctx context.Context, userID, quizID uint) (models.QuizAttempt, error) {
	db := r.conn(ctx)
	if ok, err := exists(db.Model(&models.Quiz{}).Where("id = ?", quizID)); err != nil {
		return models.QuizAttempt{}, fmt.Errorf("repository.StartAttempt: %w", err)
	} else if !ok {
		return models.QuizAttempt{}, ErrQuizNotFound
	}

	attempt := models.QuizAttempt{
		UserID:    userID,
		QuizID:    quizID,
		StartedAt: r.now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return models.QuizAttempt{}, fmt.Errorf("repository.StartAttempt: %w", err)
	}
	return attempt, nil
}

// SubmitAttempt grades the answers and closes the attempt. An attempt is
// graded at most once.
func (r *Repository) SubmitAttempt(ctx context.Context, userID, attemptID uint, answers []AnswerInput) (models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		attempt, err = getAttempt(tx, attemptID, false)
		if err != nil {
			return err
		}
		if attempt.UserID != userID {
			return ErrForbidden
		}
		if attempt.Completed {
			return ErrAttemptAlreadySubmitted
		}

		quiz, err := getQuiz(tx, attempt.QuizID)
		if err != nil {
			return err
		}

		now := r.now()
		if r.opts.EnforceTimeLimit && quiz.TimeLimit != nil && *quiz.TimeLimit > 0 {
			if now.Sub(attempt.StartedAt) > time.Duration(*quiz.TimeLimit)*time.Minute {
				return ErrTimeLimitExceeded
			}
		}

		graded, earned, total, err := Grade(quiz.Questions, answers)
		if err != nil {
			return err
		}

		score := ScorePercent(earned, total)
		duration := int(now.Sub(attempt.StartedAt) / time.Second)
		res := tx.Model(&models.QuizAttempt{}).
			Where("id = ? AND completed = ?", attempt.ID, false).
			Updates(map[string]interface{}{
				"score":        score,
				"passed":       score >= quiz.PassingScore,
				"completed":    true,
				"completed_at": now,
				"duration":     duration,
			})
		if res.Error != nil {
			return fmt.Errorf("repository.SubmitAttempt: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAttemptAlreadySubmitted
		}

		for i := range graded {
			graded[i].AttemptID = attempt.ID
		}
		if len(graded) > 0 {
			if err := tx.Create(&graded).Error; err != nil {
				if isDuplicate(err) {
					return ErrAttemptAlreadySubmitted
				}
				return fmt.Errorf("repository.SubmitAttempt: %w", err)
			}
		}

		attempt, err = getAttempt(tx, attempt.ID, true)
		return err
	})
	if err != nil {
		return models.QuizAttempt{}, err
	}
	return attempt, nil
}

// GetAttempt returns an attempt and its answers. Attempts belonging to other
// users fail with ErrForbidden.
func (r *Repository) GetAttempt(ctx context.Context, userID, attemptID uint) (models.QuizAttempt, error) {
	attempt, err := getAttempt(r.conn(ctx), attemptID, true)
	if err != nil {
		return models.QuizAttempt{}, err
	}
	if attempt.UserID != userID {
		return models.QuizAttempt{}, ErrForbidden
	}
	return attempt, nil
}

func getAttempt(db *gorm.DB, id uint, withAnswers bool) (models.QuizAttempt, error) {
	q := db
	if withAnswers {
		q = q.Preload("Answers", func(q *gorm.DB) *gorm.DB {
			return q.Order("id asc")
		})
	}
	var attempt models.QuizAttempt
	if err := q.First(&attempt, id).Error; err != nil {
		if isNotFound(err) {
			return models.QuizAttempt{}, ErrAttemptNotFound
		}
		return models.QuizAttempt{}, fmt.Errorf("repository.getAttempt: %w", err)
	}
	return attempt, nil
}

// ListAttempts returns the user's attempts at a quiz, newest first.
func (r *Repository) ListAttempts(ctx context.Context, userID, quizID uint) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := r.conn(ctx).Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("started_at desc, id desc").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("repository.ListAttempts: %w", err)
	}
	return attempts, nil
}
