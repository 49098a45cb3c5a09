package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question types
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionShortAnswer    = "short_answer"
)

var QuestionTypes = []string{QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer}

// Quiz belongs to a course. A nil LessonID makes it a course-level quiz.
type Quiz struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CourseID     uint           `json:"courseId" gorm:"not null;index"`
	LessonID     *uint          `json:"lessonId" gorm:"index"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	PassingScore int            `json:"passingScore" gorm:"not null;default:70"` // percentage
	TimeLimit    *int           `json:"timeLimit"`                              // minutes
	Questions    []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type QuizQuestion struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	QuizID        uint           `json:"quizId" gorm:"not null;index"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"size:20;not null;default:'multiple_choice'"`
	Options       datatypes.JSON `json:"options"` // []string for multiple choice
	CorrectAnswer string         `json:"correctAnswer" gorm:"not null"`
	Points        int            `json:"points" gorm:"not null;default:1"`
	Order         int            `json:"order" gorm:"column:question_order;not null;default:0"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// QuestionView is a QuizQuestion as shown to a quiz taker.
type QuestionView struct {
	ID       uint           `json:"id"`
	Question string         `json:"question"`
	Type     string         `json:"type"`
	Options  datatypes.JSON `json:"options"`
	Points   int            `json:"points"`
	Order    int            `json:"order"`
}

func (q QuizQuestion) View() QuestionView {
	return QuestionView{
		ID:       q.ID,
		Question: q.Question,
		Type:     q.Type,
		Options:  q.Options,
		Points:   q.Points,
		Order:    q.Order,
	}
}

// QuizAttempt is one user's run at a quiz. Score is meaningful once Completed.
type QuizAttempt struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"userId" gorm:"not null;index:idx_attempts_user_quiz"`
	QuizID      uint         `json:"quizId" gorm:"not null;index:idx_attempts_user_quiz"`
	Score       int          `json:"score" gorm:"not null;default:0"`
	Passed      bool         `json:"passed" gorm:"not null;default:false"`
	Completed   bool         `json:"completed" gorm:"not null;default:false"`
	StartedAt   time.Time    `json:"startedAt" gorm:"not null"`
	CompletedAt *time.Time   `json:"completedAt"`
	Duration    *int         `json:"duration"` // seconds
	Answers     []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

type QuizAnswer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AttemptID    uint      `json:"attemptId" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	QuestionID   uint      `json:"questionId" gorm:"not null;uniqueIndex:idx_answers_attempt_question"`
	UserAnswer   string    `json:"userAnswer" gorm:"type:text"`
	IsCorrect    bool      `json:"isCorrect" gorm:"not null;default:false"`
	PointsEarned int       `json:"pointsEarned" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
}
