package quizzle

import (
	"github.com/quizzle-app/quizzle/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		IsActive:     c.IsActive,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewQuestion(q *db.Question) Question {
	return Question{
		ID:            q.ID,
		CategoryID:    q.CategoryID,
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    q.Difficulty,
		Metadata:      q.Metadata,
		IsActive:      q.IsActive,
		DisplayOrder:  q.DisplayOrder,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func NewQuestions(list []db.Question) []Question {
	result := make([]Question, len(list))
	for i := range list {
		result[i] = NewQuestion(&list[i])
	}
	return result
}

func newCategoryRow(in CategoryInput) *db.Category {
	return &db.Category{
		Name:         in.Name,
		Slug:         in.Slug,
		Description:  in.Description,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
	}
}

// categoryPatchRow builds the partial row and the matching column list.
// Only non-nil patch fields are written.
func categoryPatchRow(categoryID int, patch CategoryPatch) (*db.Category, []string) {
	row := &db.Category{ID: categoryID}
	var columns []string

	if patch.Name != nil {
		row.Name = *patch.Name
		columns = append(columns, db.Columns.Category.Name)
	}
	if patch.Slug != nil {
		row.Slug = *patch.Slug
		columns = append(columns, db.Columns.Category.Slug)
	}
	if patch.Description != nil {
		row.Description = patch.Description
		columns = append(columns, db.Columns.Category.Description)
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
		columns = append(columns, db.Columns.Category.IsActive)
	}
	if patch.DisplayOrder != nil {
		row.DisplayOrder = *patch.DisplayOrder
		columns = append(columns, db.Columns.Category.DisplayOrder)
	}

	return row, columns
}

func newQuestionRow(in QuestionInput) *db.Question {
	return &db.Question{
		CategoryID:    in.CategoryID,
		QuestionText:  in.QuestionText,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
		Explanation:   in.Explanation,
		Difficulty:    in.Difficulty,
		Metadata:      in.Metadata,
		IsActive:      in.IsActive,
		DisplayOrder:  in.DisplayOrder,
	}
}

func questionPatchRow(questionID int, patch QuestionPatch) (*db.Question, []string) {
	row := &db.Question{ID: questionID}
	var columns []string

	if patch.CategoryID != nil {
		row.CategoryID = *patch.CategoryID
		columns = append(columns, db.Columns.Question.CategoryID)
	}
	if patch.QuestionText != nil {
		row.QuestionText = *patch.QuestionText
		columns = append(columns, db.Columns.Question.QuestionText)
	}
	if patch.Options != nil {
		row.Options = patch.Options
		columns = append(columns, db.Columns.Question.Options)
	}
	if patch.CorrectAnswer != nil {
		row.CorrectAnswer = *patch.CorrectAnswer
		columns = append(columns, db.Columns.Question.CorrectAnswer)
	}
	if patch.Explanation != nil {
		row.Explanation = patch.Explanation
		columns = append(columns, db.Columns.Question.Explanation)
	}
	if patch.Difficulty != nil {
		row.Difficulty = *patch.Difficulty
		columns = append(columns, db.Columns.Question.Difficulty)
	}
	if patch.Metadata != nil {
		row.Metadata = patch.Metadata
		columns = append(columns, db.Columns.Question.Metadata)
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
		columns = append(columns, db.Columns.Question.IsActive)
	}
	if patch.DisplayOrder != nil {
		row.DisplayOrder = *patch.DisplayOrder
		columns = append(columns, db.Columns.Question.DisplayOrder)
	}

	return row, columns
}
