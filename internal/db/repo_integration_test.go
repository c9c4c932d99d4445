package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, []string{"categories", "questions"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestCategories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	for _, cat := range categories {
		if cat.ID == 0 {
			t.Errorf("category %q has zero id", cat.Slug)
		}
		if cat.Name == "" || cat.Slug == "" {
			t.Errorf("category %d has empty name or slug", cat.ID)
		}
		if cat.CreatedAt.IsZero() || cat.UpdatedAt.IsZero() {
			t.Errorf("category %d missing store-assigned timestamps", cat.ID)
		}
	}
}

func TestCategoryByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("Found", func(t *testing.T) {
		category, err := repo.CategoryByID(ctx, 1)
		if err != nil {
			t.Fatalf("CategoryByID: %v", err)
		}
		if category == nil {
			t.Fatal("expected category, got nil")
		}
		if category.Slug != "geography" {
			t.Errorf("expected slug geography, got %q", category.Slug)
		}
		if category.Description == nil || *category.Description == "" {
			t.Error("expected description to be loaded")
		}
	})

	t.Run("AbsentReturnsNil", func(t *testing.T) {
		category, err := repo.CategoryByID(ctx, 99999)
		if err != nil {
			t.Fatalf("expected nil error for missing category, got: %v", err)
		}
		if category != nil {
			t.Fatalf("expected nil category, got %+v", category)
		}
	})
}

func TestCreateCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	category := &Category{
		Name:         "Sports",
		Slug:         "sports",
		IsActive:     true,
		DisplayOrder: 4,
	}

	rows, err := repo.CreateCategory(ctx, category)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}
	if category.ID == 0 {
		t.Fatal("expected id to be written back")
	}
	if category.CreatedAt.IsZero() || category.UpdatedAt.IsZero() {
		t.Error("expected store-assigned timestamps to be written back")
	}

	loaded, err := repo.CategoryByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("CategoryByID after insert: %v", err)
	}
	if loaded == nil {
		t.Fatal("inserted category not found")
	}
	if loaded.Slug != "sports" {
		t.Errorf("expected slug sports, got %q", loaded.Slug)
	}
}

func TestUpdateCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	before, err := repo.CategoryByID(ctx, 1)
	if err != nil || before == nil {
		t.Fatalf("CategoryByID: %v", err)
	}

	patch := &Category{ID: 1, Name: "World Geography"}
	rows, err := repo.UpdateCategory(ctx, patch, []string{Columns.Category.Name})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	after, err := repo.CategoryByID(ctx, 1)
	if err != nil || after == nil {
		t.Fatalf("CategoryByID after update: %v", err)
	}
	if after.Name != "World Geography" {
		t.Errorf("expected updated name, got %q", after.Name)
	}
	if after.Slug != before.Slug {
		t.Errorf("slug changed unexpectedly: %q -> %q", before.Slug, after.Slug)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Error("expected updatedAt to advance")
	}

	t.Run("MissingTargetAffectsZeroRows", func(t *testing.T) {
		rows, err := repo.UpdateCategory(ctx, &Category{ID: 99999, Name: "X"}, []string{Columns.Category.Name})
		if err != nil {
			t.Fatalf("UpdateCategory missing: %v", err)
		}
		if rows != 0 {
			t.Fatalf("expected 0 rows affected, got %d", rows)
		}
	})
}

func TestDeleteCategory_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	// Category 3 has no questions, so the FK does not block the delete.
	rows, err := repo.DeleteCategory(ctx, 3)
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	category, err := repo.CategoryByID(ctx, 3)
	if err != nil {
		t.Fatalf("CategoryByID after delete: %v", err)
	}
	if category != nil {
		t.Fatal("expected category to be gone")
	}

	t.Run("MissingTargetAffectsZeroRows", func(t *testing.T) {
		rows, err := repo.DeleteCategory(ctx, 99999)
		if err != nil {
			t.Fatalf("DeleteCategory missing: %v", err)
		}
		if rows != 0 {
			t.Fatalf("expected 0 rows affected, got %d", rows)
		}
	})
}

func TestQuestions_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	questions, err := repo.Questions(ctx)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.ID == 0 {
			t.Error("question has zero id")
		}
		if q.CategoryID == 0 {
			t.Errorf("question %d has zero categoryId", q.ID)
		}
		if len(q.Options) == 0 {
			t.Errorf("question %d has no options", q.ID)
		}
		if q.CorrectAnswer == "" {
			t.Errorf("question %d has no correct answer", q.ID)
		}
	}
}

func TestQuestionByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("Found", func(t *testing.T) {
		question, err := repo.QuestionByID(ctx, 2)
		if err != nil {
			t.Fatalf("QuestionByID: %v", err)
		}
		if question == nil {
			t.Fatal("expected question, got nil")
		}
		if question.CorrectAnswer != "Nile" {
			t.Errorf("expected answer Nile, got %q", question.CorrectAnswer)
		}
		if question.Metadata == nil || question.Metadata["source"] != "seed" {
			t.Errorf("expected metadata to round-trip, got %v", question.Metadata)
		}
	})

	t.Run("AbsentReturnsNil", func(t *testing.T) {
		question, err := repo.QuestionByID(ctx, 99999)
		if err != nil {
			t.Fatalf("expected nil error for missing question, got: %v", err)
		}
		if question != nil {
			t.Fatalf("expected nil question, got %+v", question)
		}
	})
}

func TestQuestionsByCategoryID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("ReturnsMatchingQuestions", func(t *testing.T) {
		questions, err := repo.QuestionsByCategoryID(ctx, 1)
		if err != nil {
			t.Fatalf("QuestionsByCategoryID: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
		for _, q := range questions {
			if q.CategoryID != 1 {
				t.Errorf("expected categoryId 1, got %d", q.CategoryID)
			}
		}
	})

	t.Run("UnknownCategoryReturnsEmptySlice", func(t *testing.T) {
		questions, err := repo.QuestionsByCategoryID(ctx, 99999)
		if err != nil {
			t.Fatalf("QuestionsByCategoryID unknown: %v", err)
		}
		if questions == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(questions) != 0 {
			t.Fatalf("expected empty slice, got %d items", len(questions))
		}
	})
}

func TestCreateQuestion_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	explanation := "Basic chemistry"
	question := &Question{
		CategoryID:    2,
		QuestionText:  "What gas do plants absorb?",
		Options:       []string{"CO2", "O2", "N2"},
		CorrectAnswer: "CO2",
		Explanation:   &explanation,
		Difficulty:    2,
		Metadata:      map[string]interface{}{"topic": "biology"},
		IsActive:      true,
	}

	rows, err := repo.CreateQuestion(ctx, question)
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}
	if question.ID == 0 {
		t.Fatal("expected id to be written back")
	}

	loaded, err := repo.QuestionByID(ctx, question.ID)
	if err != nil || loaded == nil {
		t.Fatalf("QuestionByID after insert: %v", err)
	}
	if len(loaded.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(loaded.Options))
	}
	if loaded.Metadata["topic"] != "biology" {
		t.Errorf("expected metadata to round-trip, got %v", loaded.Metadata)
	}
}

func TestUpdateQuestion_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	patch := &Question{ID: 1, Difficulty: 3, Options: []string{"Paris", "Lyon"}}
	rows, err := repo.UpdateQuestion(ctx, patch, []string{
		Columns.Question.Difficulty,
		Columns.Question.Options,
	})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	after, err := repo.QuestionByID(ctx, 1)
	if err != nil || after == nil {
		t.Fatalf("QuestionByID after update: %v", err)
	}
	if after.Difficulty != 3 {
		t.Errorf("expected difficulty 3, got %d", after.Difficulty)
	}
	if len(after.Options) != 2 {
		t.Errorf("expected 2 options, got %d", len(after.Options))
	}
	if after.CorrectAnswer != "Paris" {
		t.Errorf("untouched column changed: %q", after.CorrectAnswer)
	}
}

func TestDeleteQuestion_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	rows, err := repo.DeleteQuestion(ctx, 3)
	if err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	question, err := repo.QuestionByID(ctx, 3)
	if err != nil {
		t.Fatalf("QuestionByID after delete: %v", err)
	}
	if question != nil {
		t.Fatal("expected question to be gone")
	}

	t.Run("MissingTargetAffectsZeroRows", func(t *testing.T) {
		rows, err := repo.DeleteQuestion(ctx, 99999)
		if err != nil {
			t.Fatalf("DeleteQuestion missing: %v", err)
		}
		if rows != 0 {
			t.Fatalf("expected 0 rows affected, got %d", rows)
		}
	})
}
