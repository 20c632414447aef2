package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const countQuestions = `SELECT count(*) FROM questions`

func (q *Queries) CountQuestions(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countQuestions)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getQuestion = `SELECT id, question, answer, category, difficulty
FROM questions
WHERE id = $1`

func (q *Queries) GetQuestion(ctx context.Context, id int32) (Question, error) {
	row := q.db.QueryRow(ctx, getQuestion, id)
	var i Question
	err := row.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty)
	return i, err
}

const insertQuestion = `INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty`

type InsertQuestionParams struct {
	Question   pgtype.Text
	Answer     pgtype.Text
	Category   pgtype.Int4
	Difficulty pgtype.Int4
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	var i Question
	err := row.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty)
	return i, err
}

const listCategories = `SELECT id, type FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Type); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listQuestions = `SELECT id, question, answer, category, difficulty
FROM questions
ORDER BY id
LIMIT $1 OFFSET $2`

type ListQuestionsParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListQuestions(ctx context.Context, arg ListQuestionsParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

const listQuestionsByCategory = `SELECT id, question, answer, category, difficulty
FROM questions
WHERE category = $1
ORDER BY id`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int32) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, category)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

const listQuizCandidateIDs = `SELECT id
FROM questions
WHERE ($1::int IS NULL OR category = $1)
  AND NOT (id = ANY($2::int[]))
ORDER BY id`

type ListQuizCandidateIDsParams struct {
	Category pgtype.Int4
	Excluded []int32
}

func (q *Queries) ListQuizCandidateIDs(ctx context.Context, arg ListQuizCandidateIDsParams) ([]int32, error) {
	rows, err := q.db.Query(ctx, listQuizCandidateIDs, arg.Category, arg.Excluded)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchQuestions = `SELECT id, question, answer, category, difficulty
FROM questions
WHERE question ILIKE $1 ESCAPE '\'
ORDER BY id`

func (q *Queries) SearchQuestions(ctx context.Context, pattern string) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, pattern)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

func collectQuestions(rows pgx.Rows) ([]Question, error) {
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
