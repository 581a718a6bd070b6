package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localeaudit/internal/domain/entities"
)

// scanInto copies values into the Scan destinations used by the repository.
func scanInto(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = values[i].(int64)
		case *int32:
			*p = values[i].(int32)
		case *string:
			*p = values[i].(string)
		case *[]string:
			*p = values[i].([]string)
		case *pgtype.Timestamptz:
			*p = values[i].(pgtype.Timestamptz)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.values)
}

type fakeRows struct {
	pgx.Rows
	rows   [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return scanInto(dest, r.rows[r.pos-1]) }
func (r *fakeRows) Close()                 { r.closed = true }
func (r *fakeRows) Err() error             { return nil }

type fakeTx struct {
	pgx.Tx
	row        fakeRow
	insertArgs []any
	copyTable  pgx.Identifier
	copyCols   []string
	copied     [][]any
	copyErr    error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	tx.insertArgs = args
	return tx.row
}

func (tx *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	tx.copyTable = table
	tx.copyCols = cols
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		tx.copied = append(tx.copied, values)
	}
	if tx.copyErr != nil {
		return 0, tx.copyErr
	}
	return int64(len(tx.copied)), src.Err()
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx        *fakeTx
	rows      *fakeRows
	queryArgs []any
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) { return db.tx, nil }

func (db *fakeDB) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	db.queryArgs = args
	return db.rows, nil
}

func TestAuditRepositorySave(t *testing.T) {
	createdAt := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	tx := &fakeTx{row: fakeRow{values: []any{int64(42), pgtype.Timestamptz{Time: createdAt, Valid: true}}}}
	repo := NewAuditRepository(&fakeDB{tx: tx})

	run := &entities.AuditRun{
		PreviewLocale: "en_US",
		Locales:       []string{"fr_FR"},
		MissingCount:  2,
		Rows: []entities.Row{
			{FilePath: "locale/fr_FR/a.toml", Key: "form.submit", Preview: "Submit"},
			{FilePath: "locale/fr_FR/a.toml", Key: "title", Preview: ""},
		},
	}
	require.NoError(t, repo.Save(context.Background(), run))

	assert.Equal(t, []any{"en_US", []string{"fr_FR"}, int32(2), pgtype.Timestamptz{}}, tx.insertArgs)
	assert.Equal(t, pgx.Identifier{"audit_rows"}, tx.copyTable)
	assert.Equal(t, []string{"run_id", "position", "file_path", "key", "preview"}, tx.copyCols)
	assert.Equal(t, [][]any{
		{int64(42), int32(0), "locale/fr_FR/a.toml", "form.submit", "Submit"},
		{int64(42), int32(1), "locale/fr_FR/a.toml", "title", ""},
	}, tx.copied)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Equal(t, int64(42), run.ID)
	assert.Equal(t, createdAt, run.CreatedAt)
}

func TestAuditRepositorySaveWithoutRows(t *testing.T) {
	tx := &fakeTx{row: fakeRow{values: []any{int64(1), pgtype.Timestamptz{Time: time.Now(), Valid: true}}}}
	repo := NewAuditRepository(&fakeDB{tx: tx})

	require.NoError(t, repo.Save(context.Background(), &entities.AuditRun{PreviewLocale: "en_US"}))

	assert.Nil(t, tx.copyCols)
	assert.True(t, tx.committed)
}

func TestAuditRepositorySaveErrors(t *testing.T) {
	boom := errors.New("boom")

	type scenario struct {
		name string
		tx   *fakeTx
		msg  string
	}

	scenarios := []scenario{
		{"insert fails", &fakeTx{row: fakeRow{err: boom}}, "create audit run"},
		{
			"copy fails",
			&fakeTx{row: fakeRow{values: []any{int64(5), pgtype.Timestamptz{}}}, copyErr: boom},
			"copy audit rows",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			run := &entities.AuditRun{Rows: []entities.Row{{Key: "k"}}}
			err := NewAuditRepository(&fakeDB{tx: s.tx}).Save(context.Background(), run)

			assert.ErrorIs(t, err, boom)
			assert.ErrorContains(t, err, s.msg)
			assert.False(t, s.tx.committed)
			assert.True(t, s.tx.rolledBack)
			assert.Zero(t, run.ID)
		})
	}
}

func TestAuditRepositoryLatest(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	rows := &fakeRows{rows: [][]any{
		{int64(2), "en_US", []string{"fr_FR", "de_DE"}, int32(4), pgtype.Timestamptz{Time: at, Valid: true}},
		{int64(1), "en_US", []string{"fr_FR"}, int32(0), pgtype.Timestamptz{Time: at.Add(-time.Hour), Valid: true}},
	}}
	db := &fakeDB{rows: rows}

	runs, err := NewAuditRepository(db).Latest(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []any{5}, db.queryArgs)
	assert.True(t, rows.closed)
	assert.Equal(t, []entities.AuditRun{
		{ID: 2, PreviewLocale: "en_US", Locales: []string{"fr_FR", "de_DE"}, MissingCount: 4, CreatedAt: at},
		{ID: 1, PreviewLocale: "en_US", Locales: []string{"fr_FR"}, MissingCount: 0, CreatedAt: at.Add(-time.Hour)},
	}, runs)
}
