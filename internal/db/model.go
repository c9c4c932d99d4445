// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Name, Slug, Description, IsActive, DisplayOrder, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Question struct {
		ID, CategoryID, QuestionText, Options, CorrectAnswer, Explanation, Difficulty, Metadata, IsActive, DisplayOrder, CreatedAt, UpdatedAt string

		Category string
	}
}{
	Category: struct {
		ID, Name, Slug, Description, IsActive, DisplayOrder, CreatedAt, UpdatedAt string
	}{
		ID:           "categoryId",
		Name:         "name",
		Slug:         "slug",
		Description:  "description",
		IsActive:     "isActive",
		DisplayOrder: "displayOrder",
		CreatedAt:    "createdAt",
		UpdatedAt:    "updatedAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Question: struct {
		ID, CategoryID, QuestionText, Options, CorrectAnswer, Explanation, Difficulty, Metadata, IsActive, DisplayOrder, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:            "questionId",
		CategoryID:    "categoryId",
		QuestionText:  "questionText",
		Options:       "options",
		CorrectAnswer: "correctAnswer",
		Explanation:   "explanation",
		Difficulty:    "difficulty",
		Metadata:      "metadata",
		IsActive:      "isActive",
		DisplayOrder:  "displayOrder",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",

		Category: "Category",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Question struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Question: struct {
		Name, Alias string
	}{
		Name:  "questions",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID           int       `pg:"categoryId,pk"`
	Name         string    `pg:"name,use_zero"`
	Slug         string    `pg:"slug,use_zero"`
	Description  *string   `pg:"description"`
	IsActive     bool      `pg:"isActive,use_zero"`
	DisplayOrder int       `pg:"displayOrder,use_zero"`
	CreatedAt    time.Time `pg:"createdAt"`
	UpdatedAt    time.Time `pg:"updatedAt"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Question struct {
	tableName struct{} `pg:"questions,alias:t,discard_unknown_columns"`

	ID            int                    `pg:"questionId,pk"`
	CategoryID    int                    `pg:"categoryId,use_zero"`
	QuestionText  string                 `pg:"questionText,use_zero"`
	Options       []string               `pg:"options,use_zero"`
	CorrectAnswer string                 `pg:"correctAnswer,use_zero"`
	Explanation   *string                `pg:"explanation"`
	Difficulty    int                    `pg:"difficulty,use_zero"`
	Metadata      map[string]interface{} `pg:"metadata"`
	IsActive      bool                   `pg:"isActive,use_zero"`
	DisplayOrder  int                    `pg:"displayOrder,use_zero"`
	CreatedAt     time.Time              `pg:"createdAt"`
	UpdatedAt     time.Time              `pg:"updatedAt"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}
