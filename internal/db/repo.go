package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Categories retrieves every category, store-default ordering.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CategoryByID returns nil without error when no category matches.
func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// CreateCategory inserts one row. The new id and store-assigned timestamps
// are written back into the model.
func (r *Repository) CreateCategory(ctx context.Context, category *Category) (int, error) {
	res, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	return res.RowsAffected(), nil
}

// UpdateCategory writes only the listed columns of the row matching the
// model's primary key and refreshes updatedAt.
func (r *Repository) UpdateCategory(ctx context.Context, category *Category, columns []string) (int, error) {
	category.UpdatedAt = time.Now()
	columns = append(columns, Columns.Category.UpdatedAt)

	res, err := r.db.ModelContext(ctx, category).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to update category: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."categoryId" = ?`, categoryID).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected(), nil
}

// Questions retrieves every question, store-default ordering.
func (r *Repository) Questions(ctx context.Context) ([]Question, error) {
	var questions []Question
	err := r.db.ModelContext(ctx, &questions).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	return questions, nil
}

// QuestionByID returns nil without error when no question matches.
func (r *Repository) QuestionByID(ctx context.Context, questionID int) (*Question, error) {
	question := &Question{}
	err := r.db.ModelContext(ctx, question).
		Where(`"t"."questionId" = ?`, questionID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}

	return question, nil
}

// QuestionsByCategoryID returns all questions referencing the category,
// an empty slice when none match.
func (r *Repository) QuestionsByCategoryID(ctx context.Context, categoryID int) ([]Question, error) {
	questions := []Question{}
	err := r.db.ModelContext(ctx, &questions).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by category id: %w", err)
	}

	return questions, nil
}

func (r *Repository) CreateQuestion(ctx context.Context, question *Question) (int, error) {
	res, err := r.db.ModelContext(ctx, question).Returning("*").Insert()
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) UpdateQuestion(ctx context.Context, question *Question, columns []string) (int, error) {
	question.UpdatedAt = time.Now()
	columns = append(columns, Columns.Question.UpdatedAt)

	res, err := r.db.ModelContext(ctx, question).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to update question: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, questionID int) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Question)(nil)).
		Where(`"t"."questionId" = ?`, questionID).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete question: %w", err)
	}

	return res.RowsAffected(), nil
}
