//go:build !tinygo

package trace

import (
	"database/sql"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

const createEvents = `CREATE TABLE IF NOT EXISTS events (
	session TEXT NOT NULL,
	seq     INTEGER NOT NULL,
	kind    TEXT NOT NULL,
	addr    INTEGER NOT NULL,
	reg     TEXT NOT NULL,
	value   INTEGER NOT NULL,
	micros  INTEGER NOT NULL
)`

const insertEvent = `INSERT INTO events (session, seq, kind, addr, reg, value, micros)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

// SQLiteWriter batches journal events into a SQLite database. Every writer
// tags its rows with a fresh session id, so one database can hold many runs.
type SQLiteWriter struct {
	db        *sql.DB
	stmt      *sql.Stmt
	session   string
	batchSize int

	mu      sync.Mutex
	pending []Event
	err     error // first failed flush; its batch is lost
}

// NewSQLiteWriter opens (or creates) the database at path. An empty path
// creates "<session>.sqlite3" in the working directory. Pending events are
// flushed at exit.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	session := xid.New().String()
	if path == "" {
		path = session + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createEvents); err != nil {
		db.Close()
		return nil, err
	}
	stmt, err := db.Prepare(insertEvent)
	if err != nil {
		db.Close()
		return nil, err
	}

	w := &SQLiteWriter{db: db, stmt: stmt, session: session, batchSize: 256}
	atexit.Register(func() { _ = w.Flush() })
	return w, nil
}

// Session returns the id stamped on this writer's rows.
func (w *SQLiteWriter) Session() string { return w.session }

func (w *SQLiteWriter) WriteEvent(e Event) {
	w.mu.Lock()
	w.pending = append(w.pending, e)
	full := len(w.pending) >= w.batchSize
	w.mu.Unlock()

	if full {
		_ = w.Flush()
	}
}

// Err returns the first flush failure, if any.
func (w *SQLiteWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *SQLiteWriter) fail(err error) error {
	w.mu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.mu.Unlock()
	return err
}

// Flush writes all buffered events in one transaction.
func (w *SQLiteWriter) Flush() error {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return w.fail(err)
	}
	st := tx.Stmt(w.stmt)
	for _, e := range batch {
		_, err := st.Exec(w.session, e.Seq, e.Kind.String(), e.Addr, e.Reg, e.Value, e.Micros)
		if err != nil {
			tx.Rollback()
			return w.fail(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return w.fail(err)
	}
	return nil
}

// Close flushes and closes the database. It reports the first flush
// failure seen over the writer's life.
func (w *SQLiteWriter) Close() error {
	w.Flush()
	err := w.Err()
	w.stmt.Close()
	if cerr := w.db.Close(); err == nil {
		err = cerr
	}
	return err
}
