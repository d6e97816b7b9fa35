package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionRowColumns = []string{"id", "question", "answer", "category", "difficulty"}

func TestQuestionDatabaseAdapter_Count(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(19), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_List(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(11, "Who painted the Mona Lisa?", "Leonardo da Vinci", 2, 3).
		AddRow(12, "What is the heaviest organ?", "The liver", 1, 4)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions ORDER BY id LIMIT ? OFFSET ?`)).
		WithArgs(10, 10).
		WillReturnRows(rows)

	questions, err := repo.List(context.Background(), domain.NewPage(2))
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, &domain.Question{
		ID:         11,
		Question:   "Who painted the Mona Lisa?",
		Answer:     "Leonardo da Vinci",
		Category:   2,
		Difficulty: 3,
	}, questions[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_List_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	dbErr := errors.New("relation \"questions\" does not exist")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM questions ORDER BY id`)).WillReturnError(dbErr)

	_, err := repo.List(context.Background(), domain.NewPage(1))
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "page 1")
}

func TestQuestionDatabaseAdapter_ByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions WHERE category = ?`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE category = ? ORDER BY id LIMIT ? OFFSET ?`)).
		WithArgs(int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow(16, "Which Dutch graphic artist created impossible objects?", "Escher", 2, 1))

	n, err := repo.CountByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	questions, err := repo.ListByCategory(ctx, 2, domain.NewPage(1))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(2), questions[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_Search(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\'`)).
		WithArgs("%TiTlE%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\' ORDER BY id LIMIT ? OFFSET ?`)).
		WithArgs("%TiTlE%", 10, 0).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow(5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2).
			AddRow(6, "What movie earned Tom Hanks his third straight Oscar nomination, in 1996? (Title)", "Apollo 13", 5, 4))

	n, err := repo.CountSearch(ctx, "TiTlE")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	questions, err := repo.Search(ctx, "TiTlE", domain.NewPage(1))
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_Search_EscapesWildcards(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\'`)).
		WithArgs(`%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.CountSearch(context.Background(), "100%")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_GetByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	query := regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE id = ?`)

	mock.ExpectQuery(query).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(9, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1))
	mock.ExpectQuery(query).WithArgs(int64(1000)).
		WillReturnRows(sqlmock.NewRows(questionRowColumns))

	q, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Muhammad Ali", q.Answer)

	missing, err := repo.GetByID(context.Background(), 1000)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	query := regexp.QuoteMeta(`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?) RETURNING id`)

	mock.ExpectQuery(query).
		WithArgs("What is the capital of Peru?", "Lima", int64(3), 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(24))

	q := domain.NewQuestion("What is the capital of Peru?", "Lima", 3, 2)
	require.NoError(t, repo.Create(context.Background(), q))
	assert.Equal(t, int64(24), q.ID)

	dbErr := errors.New("disk full")
	mock.ExpectQuery(query).WillReturnError(dbErr)
	assert.ErrorIs(t, repo.Create(context.Background(), domain.NewQuestion("q", "a", 1, 1)), dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_Delete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM questions WHERE id = ?`)

	t.Run("deleted", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		mock.ExpectExec(query).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no such row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		mock.ExpectExec(query).WithArgs(int64(1000)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 1000)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		dbErr := errors.New("database is locked")
		mock.ExpectExec(query).WithArgs(int64(4)).WillReturnError(dbErr)

		err := repo.Delete(context.Background(), 4)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuestionDatabaseAdapter_GetRandomExcluding(t *testing.T) {
	t.Run("all categories, nothing excluded", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE 1 = 1 ORDER BY RANDOM() LIMIT 1`)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(2, "What movie earned Tom Hanks his third straight Oscar nomination?", "Apollo 13", 5, 4))

		q, err := repo.GetRandomExcluding(context.Background(), domain.AllCategories, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), q.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category with exclusions", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE 1 = 1 AND category = ? AND id NOT IN (?, ?) ORDER BY RANDOM() LIMIT 1`)).
			WithArgs(int64(1), int64(20), int64(21)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(22, "Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4))

		q, err := repo.GetRandomExcluding(context.Background(), 1, []int64{20, 21})
		require.NoError(t, err)
		assert.Equal(t, int64(22), q.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exhausted", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)
		mock.ExpectQuery(regexp.QuoteMeta(`AND id NOT IN (?, ?, ?)`)).
			WithArgs(int64(1), int64(20), int64(21), int64(22)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns))

		q, err := repo.GetRandomExcluding(context.Background(), 1, []int64{20, 21, 22})
		require.NoError(t, err)
		assert.Nil(t, q)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion list past the bind limit is filtered in memory", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		exclude := make([]int64, 0, maxBoundExclusions+1)
		idRows := sqlmock.NewRows([]string{"id"})
		for id := int64(1); id <= maxBoundExclusions+1; id++ {
			exclude = append(exclude, id)
			idRows.AddRow(id)
		}
		idRows.AddRow(int64(maxBoundExclusions + 2))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM questions WHERE category = ?`)).
			WithArgs(int64(1)).
			WillReturnRows(idRows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, question, answer, category, difficulty FROM questions WHERE id = ?`)).
			WithArgs(int64(maxBoundExclusions + 2)).
			WillReturnRows(sqlmock.NewRows(questionRowColumns).AddRow(maxBoundExclusions+2, "Who discovered penicillin?", "Alexander Fleming", 1, 3))

		q, err := repo.GetRandomExcluding(context.Background(), 1, exclude)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, int64(maxBoundExclusions+2), q.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion list past the bind limit, exhausted", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewQuestionDatabaseAdapter(db)

		exclude := make([]int64, 0, maxBoundExclusions+1)
		idRows := sqlmock.NewRows([]string{"id"})
		for id := int64(1); id <= maxBoundExclusions+1; id++ {
			exclude = append(exclude, id)
			idRows.AddRow(id)
		}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM questions`)).
			WillReturnRows(idRows)

		q, err := repo.GetRandomExcluding(context.Background(), domain.AllCategories, exclude)
		require.NoError(t, err)
		assert.Nil(t, q)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
