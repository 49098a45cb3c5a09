package seed

import (
	"context"
	"log"

	"coursetrack/models"
	"coursetrack/repository"
)

// Store is the subset of the repository used for seeding.
type Store interface {
	CountUsers(ctx context.Context) (int64, error)
	Signup(ctx context.Context, nu repository.NewUser) (models.User, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	CreateLesson(ctx context.Context, lesson models.Lesson) (models.Lesson, error)
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	CreateQuestion(ctx context.Context, question models.QuizQuestion) (models.QuizQuestion, error)
}

type sampleLesson struct {
	title    string
	videoURL string
}

type sampleCourse struct {
	course  models.Course
	lessons []sampleLesson
}

var sampleCourses = []sampleCourse{
	{
		course: models.Course{
			Title:       "Python Programming Basics",
			Description: "Learn the fundamentals of Python programming",
			ImageURL:    "https://images.unsplash.com/photo-1580894732444-8ecded7900cd",
			Category:    "Programming",
			Level:       models.LevelBeginner,
		},
		lessons: []sampleLesson{
			{"Python Intro", "https://www.youtube.com/embed/_uQrJ0TkZlc"},
			{"Variables & Data Types", "https://www.youtube.com/embed/kqtD5dpn9C8"},
			{"Control Flow", "https://www.youtube.com/embed/6iF8Xb7Z3wQ"},
		},
	},
	{
		course: models.Course{
			Title:       "Web Development Fundamentals",
			Description: "Master the core technologies of the web",
			ImageURL:    "https://images.unsplash.com/photo-1593720213428-28a5b9e94613",
			Category:    "Web Development",
			Level:       models.LevelBeginner,
		},
		lessons: []sampleLesson{
			{"HTML Basics", "https://www.youtube.com/embed/qz0aGYrrlhU"},
			{"CSS Fundamentals", "https://www.youtube.com/embed/1PnVor36_40"},
			{"JavaScript Intro", "https://www.youtube.com/embed/hdI2bqOjy3c"},
		},
	},
	{
		course: models.Course{
			Title:       "Data Science Essentials",
			Description: "Introduction to data science concepts and tools",
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
			Category:    "Data Science",
			Level:       models.LevelIntermediate,
		},
		lessons: []sampleLesson{
			{"What is Data Science?", "https://www.youtube.com/embed/X3paOmcrTjQ"},
			{"Python for Data", "https://www.youtube.com/embed/r-uOLxNrNk8"},
			{"Pandas Tutorial", "https://www.youtube.com/embed/vmEHCJofslg"},
		},
	},
	{
		course: models.Course{
			Title:       "Responsive Web Design",
			Description: "Create websites that work on any device",
			Category:    "Web Development",
			Level:       models.LevelIntermediate,
		},
		lessons: []sampleLesson{
			{"Responsive Design Basics", "https://www.youtube.com/embed/srvUrASNj0s"},
			{"Media Queries", "https://www.youtube.com/embed/5xzaGSYd7jM"},
			{"Flexbox Guide", "https://www.youtube.com/embed/fYq5PXgSsbE"},
		},
	},
	{
		course: models.Course{
			Title:       "Cybersecurity Fundamentals",
			Description: "Learn essential security concepts",
			ImageURL:    "https://images.unsplash.com/photo-1563206767-5b18f218e8de",
			Category:    "Technology",
			Level:       models.LevelIntermediate,
		},
		lessons: []sampleLesson{
			{"Intro to Cybersecurity", "https://www.youtube.com/embed/2N3jjGO4vvw"},
			{"Types of Attacks", "https://www.youtube.com/embed/3V2gGkIEqys"},
		},
	},
	{
		course: models.Course{
			Title:       "Public Speaking",
			Description: "Master the art of public speaking",
			ImageURL:    "https://images.unsplash.com/photo-1475721027785-f74eccf877e2",
			Category:    "Personal Development",
			Level:       models.LevelBeginner,
		},
	},
}

// Run fills an empty store with a default student and sample courses. Every
// step is best effort: failures are logged and seeding moves on.
func Run(ctx context.Context, store Store) {
	n, err := store.CountUsers(ctx)
	if err != nil {
		log.Printf("[SEED] Error counting users: %v", err)
		return
	}
	if n > 0 {
		return
	}
	log.Println("[SEED] Initializing database with sample data...")

	if _, err := store.Signup(ctx, repository.NewUser{
		Username:  "sarah",
		Email:     "sarah@example.com",
		Password:  "password123",
		FirstName: "Sarah",
		LastName:  "Johnson",
		Role:      models.RoleStudent,
	}); err != nil {
		log.Printf("[SEED] Error creating default user: %v", err)
	}

	for _, sc := range sampleCourses {
		c := sc.course
		c.Published = true
		course, err := store.CreateCourse(ctx, c)
		if err != nil {
			log.Printf("[SEED] Error creating course %q: %v", c.Title, err)
			continue
		}
		for i, l := range sc.lessons {
			if _, err := store.CreateLesson(ctx, models.Lesson{
				CourseID: course.ID,
				Title:    l.title,
				VideoURL: l.videoURL,
				Order:    i + 1,
			}); err != nil {
				log.Printf("[SEED] Error creating lesson %q: %v", l.title, err)
			}
		}
		if len(sc.lessons) > 0 {
			seedQuiz(ctx, store, course)
		}
	}
	log.Println("[SEED] Sample data created.")
}

func seedQuiz(ctx context.Context, store Store, course models.Course) {
	quiz, err := store.CreateQuiz(ctx, models.Quiz{
		CourseID:     course.ID,
		Title:        course.Title + " Check",
		Description:  "A short check of the course essentials",
		PassingScore: 70,
	})
	if err != nil {
		log.Printf("[SEED] Error creating quiz for %q: %v", course.Title, err)
		return
	}
	if _, err := store.CreateQuestion(ctx, models.QuizQuestion{
		QuizID:        quiz.ID,
		Question:      "Did you watch every lesson of " + course.Title + "?",
		Type:          models.QuestionTrueFalse,
		CorrectAnswer: "true",
		Points:        1,
		Order:         1,
	}); err != nil {
		log.Printf("[SEED] Error creating question for %q: %v", course.Title, err)
	}
}
