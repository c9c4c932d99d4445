package rest

import "github.com/quizzle-app/quizzle/internal/quizzle"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategoryResource(c quizzle.Category) CategoryResource {
	return CategoryResource{
		Type: TypeCategories,
		ID:   c.ID,
		Attributes: CategoryAttributes{
			Name:         c.Name,
			Slug:         c.Slug,
			Description:  c.Description,
			IsActive:     c.IsActive,
			DisplayOrder: c.DisplayOrder,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		},
	}
}

func NewQuestionResource(q quizzle.Question) QuestionResource {
	return QuestionResource{
		Type: TypeQuestions,
		ID:   q.ID,
		Attributes: QuestionAttributes{
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
		},
	}
}

func (p CategoryInsert) toInput() quizzle.CategoryInput {
	in := quizzle.CategoryInput{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		IsActive:    true,
	}

	if p.IsActive != nil {
		in.IsActive = *p.IsActive
	}
	if p.DisplayOrder != nil {
		in.DisplayOrder = *p.DisplayOrder
	}

	return in
}

func (p CategoryUpdate) toPatch() quizzle.CategoryPatch {
	return quizzle.CategoryPatch{
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		IsActive:     p.IsActive,
		DisplayOrder: p.DisplayOrder,
	}
}

func (p QuestionInsert) toInput() quizzle.QuestionInput {
	in := quizzle.QuestionInput{
		CategoryID:    p.CategoryID,
		QuestionText:  p.QuestionText,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Explanation:   p.Explanation,
		Difficulty:    1,
		Metadata:      p.Metadata,
		IsActive:      true,
	}

	if p.Difficulty != nil {
		in.Difficulty = *p.Difficulty
	}
	if p.IsActive != nil {
		in.IsActive = *p.IsActive
	}
	if p.DisplayOrder != nil {
		in.DisplayOrder = *p.DisplayOrder
	}

	return in
}

func (p QuestionUpdate) toPatch() quizzle.QuestionPatch {
	return quizzle.QuestionPatch{
		CategoryID:    p.CategoryID,
		QuestionText:  p.QuestionText,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Explanation:   p.Explanation,
		Difficulty:    p.Difficulty,
		Metadata:      p.Metadata,
		IsActive:      p.IsActive,
		DisplayOrder:  p.DisplayOrder,
	}
}
