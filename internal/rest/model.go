package rest

import "time"

// Resource type tags used in the data envelope.
const (
	TypeCategories  = "categories"
	TypeQuestions   = "questions"
	TypeHealthCheck = "healthCheck"
)

// DataResponse is the success envelope: a single resource object or a list.
// List endpoints always carry an array, empty but never null.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CommitResponse is the write-success envelope.
type CommitResponse struct {
	Message  string        `json:"message"`
	Response CommitDetails `json:"response"`
}

type CommitDetails struct {
	RowsAffected int  `json:"rowsAffected"`
	ID           *int `json:"id,omitempty"`
}

// ErrorResponse is the error envelope. ID is a short machine code, Errors
// enumerates every violation.
type ErrorResponse struct {
	ID      string                 `json:"id"`
	Status  int                    `json:"status"`
	Message string                 `json:"message,omitempty"`
	Errors  []ErrorDetail          `json:"errors,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail"`
}

type CategoryResource struct {
	Type       string             `json:"type"`
	ID         int                `json:"id"`
	Attributes CategoryAttributes `json:"attributes"`
}

// CategoryAttributes carries every category field except the id, which
// already sits on the resource object.
type CategoryAttributes struct {
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type QuestionResource struct {
	Type       string             `json:"type"`
	ID         int                `json:"id"`
	Attributes QuestionAttributes `json:"attributes"`
}

type QuestionAttributes struct {
	CategoryID    int                    `json:"categoryId"`
	QuestionText  string                 `json:"questionText"`
	Options       []string               `json:"options"`
	CorrectAnswer string                 `json:"correctAnswer"`
	Explanation   *string                `json:"explanation"`
	Difficulty    int                    `json:"difficulty"`
	Metadata      map[string]interface{} `json:"metadata"`
	IsActive      bool                   `json:"isActive"`
	DisplayOrder  int                    `json:"displayOrder"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type HealthResource struct {
	Type       string           `json:"type"`
	ID         int              `json:"id"`
	Attributes HealthAttributes `json:"attributes"`
}

type HealthAttributes struct {
	Status string `json:"status"`
}

// CategoryInsert is the insert schema: mandatory fields required, unknown
// fields rejected at bind time, defaults applied during conversion.
type CategoryInsert struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Slug         string  `json:"slug" validate:"required,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=255"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,min=0"`
}

// CategoryUpdate is the partial update schema: every field optional, type
// and range rules still enforced.
type CategoryUpdate struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug         *string `json:"slug" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=255"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,min=0"`
}

type QuestionInsert struct {
	CategoryID    int                    `json:"categoryId" validate:"required,min=1"`
	QuestionText  string                 `json:"questionText" validate:"required"`
	Options       []string               `json:"options" validate:"required,min=1,dive,required"`
	CorrectAnswer string                 `json:"correctAnswer" validate:"required"`
	Explanation   *string                `json:"explanation"`
	Difficulty    *int                   `json:"difficulty" validate:"omitempty,min=1"`
	Metadata      map[string]interface{} `json:"metadata"`
	IsActive      *bool                  `json:"isActive"`
	DisplayOrder  *int                   `json:"displayOrder" validate:"omitempty,min=0"`
}

type QuestionUpdate struct {
	CategoryID    *int                   `json:"categoryId" validate:"omitempty,min=1"`
	QuestionText  *string                `json:"questionText" validate:"omitempty,min=1"`
	Options       []string               `json:"options" validate:"omitempty,min=1,dive,required"`
	CorrectAnswer *string                `json:"correctAnswer" validate:"omitempty,min=1"`
	Explanation   *string                `json:"explanation"`
	Difficulty    *int                   `json:"difficulty" validate:"omitempty,min=1"`
	Metadata      map[string]interface{} `json:"metadata"`
	IsActive      *bool                  `json:"isActive"`
	DisplayOrder  *int                   `json:"displayOrder" validate:"omitempty,min=0"`
}
