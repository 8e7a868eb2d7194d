package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/japaniel/namer/pkg/dictionary"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// CreateOrGetCategory returns the id of the named category, creating it if
// needed. Existing categories keep their id and therefore their position.
func CreateOrGetCategory(db DBExecutor, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("category name must be non-empty")
	}

	query, args, err := sq.Insert("categories").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT(name) DO UPDATE SET name = excluded.name RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build category upsert: %w", err)
	}

	var id int64
	if err := db.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert category %q: %w", name, err)
	}
	return id, nil
}

// UpsertTerm stores rec under the normalized phrase in the category. An
// existing row for the same (category, phrase) is updated in place and keeps
// its id.
func UpsertTerm(db DBExecutor, categoryID int64, phrase string, rec dictionary.Record) (int64, error) {
	phrase = dictionary.NormalizePhrase(phrase)
	if phrase == "" {
		return 0, fmt.Errorf("phrase must be non-empty")
	}
	if categoryID <= 0 {
		return 0, fmt.Errorf("categoryID must be positive")
	}

	altJSON, err := encodeAlternatives(rec.Alternatives)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Insert("terms").
		Columns("category_id", "phrase", "primary_text", "alternatives", "is_custom").
		Values(categoryID, phrase, rec.Primary, altJSON, rec.Custom).
		Suffix(`ON CONFLICT(category_id, phrase) DO UPDATE SET
			primary_text = excluded.primary_text,
			alternatives = excluded.alternatives,
			is_custom = excluded.is_custom
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build term upsert: %w", err)
	}

	var id int64
	if err := db.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert term %q: %w", phrase, err)
	}
	return id, nil
}

// SaveTerm creates the category if needed and upserts the term.
func SaveTerm(db DBExecutor, category, phrase string, rec dictionary.Record) error {
	catID, err := CreateOrGetCategory(db, category)
	if err != nil {
		return err
	}
	_, err = UpsertTerm(db, catID, phrase, rec)
	return err
}

// LoadCategories returns every category in creation order.
func LoadCategories(db DBExecutor) ([]Category, error) {
	query, args, err := sq.Select("id", "name").From("categories").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// LoadTerms returns every term ordered by category creation and then by term
// insertion.
func LoadTerms(db DBExecutor) ([]TermRow, error) {
	query, args, err := sq.Select(
		"t.id", "t.category_id", "c.name", "t.phrase", "t.primary_text",
		"t.alternatives", "t.is_custom", "t.added_at",
	).
		From("terms t").
		Join("categories c ON c.id = t.category_id").
		OrderBy("c.id", "t.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	var out []TermRow
	for rows.Next() {
		var r TermRow
		var alts string
		if err := rows.Scan(&r.ID, &r.CategoryID, &r.Category, &r.Phrase, &r.Primary, &alts, &r.IsCustom, &r.AddedAt); err != nil {
			return nil, err
		}
		r.Alternatives = decodeAlternatives(alts)
		out = append(out, r)
	}
	return out, rows.Err()
}

// encodeAlternatives renders alts as a JSON array of strings.
func encodeAlternatives(alts []string) (string, error) {
	out := "[]"
	for _, a := range alts {
		var err error
		if out, err = sjson.Set(out, "-1", a); err != nil {
			return "", fmt.Errorf("encode alternatives: %w", err)
		}
	}
	return out, nil
}

// decodeAlternatives reads the JSON array column, skipping anything that is
// not a non-empty string.
func decodeAlternatives(raw string) []string {
	var out []string
	for _, v := range gjson.Parse(raw).Array() {
		if v.Type == gjson.String && v.Str != "" {
			out = append(out, v.Str)
		}
	}
	return out
}

// LoadStore reads the whole database into a dictionary.Store, preserving
// category and term order.
func LoadStore(db DBExecutor) (*dictionary.Store, error) {
	cats, err := LoadCategories(db)
	if err != nil {
		return nil, err
	}
	terms, err := LoadTerms(db)
	if err != nil {
		return nil, err
	}

	s := dictionary.NewStore()
	for _, c := range cats {
		s.AddCategory(c.Name)
	}
	for _, t := range terms {
		s.Put(t.Category, t.Phrase, dictionary.Record{
			Primary:      t.Primary,
			Alternatives: t.Alternatives,
			Custom:       t.IsCustom,
		})
	}
	return s, nil
}

// ImportStore writes every term of store into the database, batchSize terms
// per transaction. It returns the number of terms written. Batches already
// committed stay committed when a later one fails or ctx is cancelled.
func ImportStore(ctx context.Context, conn *sql.DB, store *dictionary.Store, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	catIDs := make(map[string]int64)
	for _, name := range store.Categories() {
		id, err := CreateOrGetCategory(conn, name)
		if err != nil {
			return 0, err
		}
		catIDs[name] = id
	}

	terms := store.All()
	written := 0
	for start := 0; start < len(terms); start += batchSize {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		end := min(start+batchSize, len(terms))
		if err := importBatch(ctx, conn, catIDs, terms[start:end]); err != nil {
			return written, err
		}
		written = end
	}
	return written, nil
}

func importBatch(ctx context.Context, conn *sql.DB, catIDs map[string]int64, batch []dictionary.Term) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, t := range batch {
		if _, err := UpsertTerm(tx, catIDs[t.Category], t.Phrase, t.Record); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import batch (%d terms): %w", len(batch), err)
	}
	return nil
}

// CountTerms returns the number of stored terms.
func CountTerms(db DBExecutor) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("terms").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return n, nil
}
