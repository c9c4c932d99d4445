package quizzle

import (
	"context"
	"fmt"
)

// Categories returns every category, materialized once, store-default order.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CategoryByID returns nil without error when no category matches.
func (m *Manager) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	row, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	category := NewCategory(row)
	return &category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (CommitResult, error) {
	row := newCategoryRow(in)

	rows, err := m.db.CreateCategory(ctx, row)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpCreate, Entity: "category", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpCreate, Entity: "category", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows, LastInsertID: row.ID}, nil
}

// UpdateCategory changes only the fields set in the patch. Zero rows changed
// is a failure, whether the id is missing or the patch is empty.
func (m *Manager) UpdateCategory(ctx context.Context, categoryID int, patch CategoryPatch) (CommitResult, error) {
	row, columns := categoryPatchRow(categoryID, patch)
	if len(columns) == 0 {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "category", Err: ErrNoRowsAffected}
	}

	rows, err := m.db.UpdateCategory(ctx, row, columns)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "category", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpUpdate, Entity: "category", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows}, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) (CommitResult, error) {
	rows, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return CommitResult{}, &PersistenceError{Op: OpDelete, Entity: "category", Err: err}
	}
	if rows == 0 {
		return CommitResult{}, &PersistenceError{Op: OpDelete, Entity: "category", Err: ErrNoRowsAffected}
	}

	return CommitResult{RowsAffected: rows}, nil
}
