package quizzle

import (
	"context"
	"time"

	"github.com/quizzle-app/quizzle/internal/db"
)

// Repo is the store surface the managers depend on, implemented by
// *db.Repository. Tests substitute their own implementation.
type Repo interface {
	Ping(ctx context.Context) error
	Close() error

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) (int, error)
	UpdateCategory(ctx context.Context, category *db.Category, columns []string) (int, error)
	DeleteCategory(ctx context.Context, categoryID int) (int, error)

	Questions(ctx context.Context) ([]db.Question, error)
	QuestionByID(ctx context.Context, questionID int) (*db.Question, error)
	QuestionsByCategoryID(ctx context.Context, categoryID int) ([]db.Question, error)
	CreateQuestion(ctx context.Context, question *db.Question) (int, error)
	UpdateQuestion(ctx context.Context, question *db.Question, columns []string) (int, error)
	DeleteQuestion(ctx context.Context, questionID int) (int, error)
}

type Manager struct {
	db Repo
}

func NewManager(repo Repo) *Manager {
	return &Manager{
		db: repo,
	}
}

type Category struct {
	ID           int
	Name         string
	Slug         string
	Description  *string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Question struct {
	ID            int
	CategoryID    int
	QuestionText  string
	Options       []string
	CorrectAnswer string
	Explanation   *string
	Difficulty    int
	Metadata      map[string]interface{}
	IsActive      bool
	DisplayOrder  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CommitResult is the outcome of a write: the affected-row count and, for
// inserts, the store-assigned identifier.
type CommitResult struct {
	RowsAffected int
	LastInsertID int
}

// CategoryInput is a fully resolved insert payload, defaults already applied.
type CategoryInput struct {
	Name         string
	Slug         string
	Description  *string
	IsActive     bool
	DisplayOrder int
}

// CategoryPatch is a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name         *string
	Slug         *string
	Description  *string
	IsActive     *bool
	DisplayOrder *int
}

type QuestionInput struct {
	CategoryID    int
	QuestionText  string
	Options       []string
	CorrectAnswer string
	Explanation   *string
	Difficulty    int
	Metadata      map[string]interface{}
	IsActive      bool
	DisplayOrder  int
}

type QuestionPatch struct {
	CategoryID    *int
	QuestionText  *string
	Options       []string
	CorrectAnswer *string
	Explanation   *string
	Difficulty    *int
	Metadata      map[string]interface{}
	IsActive      *bool
	DisplayOrder  *int
}
