package quizzle

import (
	"context"
	"fmt"
)

// Questions returns every question, materialized once, store-default order.
func (m *Manager) Questions(ctx context.Context) ([]Question, error) {
	list, err := m.db.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get questions: %w", err)
	}

	return NewQuestions(list), nil
}

// QuestionByID returns nil without error when no question matches.
func (m *Manager) QuestionByID(ctx context.Context, questionID int) (*Question, error) {
	row, err := m.db.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("db get question by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	question := NewQuestion(row)
	return &question, nil
}

// QuestionsByCategoryID returns exactly the questions whose categoryId
// matches, an empty slice when none do.
func (m *Manager) QuestionsByCategoryID(ctx context.Context, categoryID int) ([]Question, error) {
	list, err := m.db.QuestionsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get questions by category id: %w", err)
	}

	return NewQuestions(list), nil
}

func (m *Manager) CreateQuestion(ctx context.Context, in QuestionInput) (CommitResult, error) {
	row := newQuestionRow(in)

	rows, err := m.db.CreateQuestion(ctx, row)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpCreate, Entity: "question", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpCreate, Entity: "question", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows, LastInsertID: row.ID}, nil
}

func (m *Manager) UpdateQuestion(ctx context.Context, questionID int, patch QuestionPatch) (CommitResult, error) {
	row, columns := questionPatchRow(questionID, patch)
	if len(columns) == 0 {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "question", Err: ErrNoRowsAffected}
	}

	rows, err := m.db.UpdateQuestion(ctx, row, columns)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "question", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "question", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows}, nil
}

func (m *Manager) DeleteQuestion(ctx context.Context, questionID int) (CommitResult, error) {
	rows, err := m.db.DeleteQuestion(ctx, questionID)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpDelete, Entity: "question", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpDelete, Entity: "question", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows}, nil
}
