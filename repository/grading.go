package repository

import (
	"math"

	"coursetrack/models"
)

// AnswerInput is one submitted answer.
type AnswerInput struct {
	QuestionID uint
	UserAnswer string
}

// Grade marks each answer against the quiz's questions. Matching is exact and
// case-sensitive with no partial credit. It returns the graded answers and the
// points earned out of the quiz total.
func Grade(questions []models.QuizQuestion, answers []AnswerInput) (graded []models.QuizAnswer, earned, total int, err error) {
	byID := make(map[uint]models.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
		total += q.Points
	}

	seen := make(map[uint]bool, len(answers))
	graded = make([]models.QuizAnswer, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, 0, 0, ErrUnknownQuestion
		}
		if seen[a.QuestionID] {
			return nil, 0, 0, ErrDuplicateAnswer
		}
		seen[a.QuestionID] = true

		answer := models.QuizAnswer{QuestionID: q.ID, UserAnswer: a.UserAnswer}
		if a.UserAnswer == q.CorrectAnswer {
			answer.IsCorrect = true
			answer.PointsEarned = q.Points
			earned += q.Points
		}
		graded = append(graded, answer)
	}
	return graded, earned, total, nil
}

// ScorePercent is round(100 * earned / total), or 0 for a quiz worth nothing.
func ScorePercent(earned, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(total)))
}
