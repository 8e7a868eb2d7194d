package db

// migrationsSQL creates the term database schema. Statements are separated by
// ";" and must be idempotent.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS terms (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	category_id  INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	phrase       TEXT NOT NULL,
	primary_text TEXT NOT NULL,
	alternatives TEXT NOT NULL DEFAULT '[]',
	is_custom    INTEGER NOT NULL DEFAULT 0,
	added_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(category_id, phrase)
);

CREATE INDEX IF NOT EXISTS idx_terms_phrase ON terms(phrase)
`
