// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/regatta-console/csvtable"
	"github.com/danielhkuo/regatta-console/selection"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("import session not found")

// Session is the server-side state of one boat import wizard. It only
// exists between the CSV upload and the commit; the scoring backend
// never sees it.
type Session struct {
	ID          string
	Header      []string
	Rows        []csvtable.Row
	ParseErrors []csvtable.ParseError
	Mapping     csvtable.Mapping
	Filter      csvtable.Filter
	Selected    []int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FilteredRows returns the session's rows through its current filter.
func (s *Session) FilteredRows() []csvtable.Row {
	return csvtable.FilteredRows(s.Rows, s.Filter)
}

// Boats derives the import records for the current mapping, filter and
// selection.
func (s *Session) Boats() []csvtable.Boat {
	return csvtable.DeriveBoats(s.FilteredRows(), s.Selected, s.Mapping)
}

// Selection returns the checked rows as a selection set. Mutations are
// persisted by writing Members() back to Selected.
func (s *Session) Selection() *selection.Set {
	return selection.Of(s.Selected...)
}

// viewUniverse is the index universe of the current filtered view.
func (s *Session) viewUniverse() []int {
	u := make([]int, len(s.FilteredRows()))
	for i := range u {
		u[i] = i
	}
	return u
}

// AllSelected reports whether every row of the filtered view is
// checked. An empty view is never all-selected.
func (s *Session) AllSelected() bool {
	return s.Selection().AllSelected(s.viewUniverse())
}

// Indeterminate reports whether some but not all rows of the filtered
// view are checked.
func (s *Session) Indeterminate() bool {
	return s.Selection().Indeterminate(s.viewUniverse())
}

// Store persists import sessions in SQL.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store over db. The schema must already exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create saves a freshly parsed table as a new session and returns it.
func (st *Store) Create(tbl *csvtable.Table) (*Session, error) {
	now := time.Now().UTC()
	s := &Session{
		ID:          uuid.NewString(),
		Header:      tbl.Header,
		Rows:        tbl.Rows,
		ParseErrors: tbl.Errors,
		Selected:    []int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := st.insert(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (st *Store) insert(s *Session) error {
	header, rows, parseErrors, mapping, filter, selected, err := marshalFields(s)
	if err != nil {
		return err
	}
	_, err = st.db.Exec(`
		INSERT INTO import_session (id, header, rows, parse_errors, mapping, filter, selected, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, header, rows, parseErrors, mapping, filter, selected, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get loads a session by ID.
func (st *Store) Get(id string) (*Session, error) {
	var (
		s                                               Session
		header, rows, parseErrors, mapping, filter, sel string
	)
	err := st.db.QueryRow(`
		SELECT id, header, rows, parse_errors, mapping, filter, selected, created_at, updated_at
		FROM import_session
		WHERE id = $1
	`, id).Scan(&s.ID, &header, &rows, &parseErrors, &mapping, &filter, &sel, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	if err := unmarshalFields(&s, header, rows, parseErrors, mapping, filter, sel); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetMapping updates the column mapping. Selection is untouched: a
// mapping change only affects the derived records, not which rows are
// checked.
func (st *Store) SetMapping(id string, m csvtable.Mapping) (*Session, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	s.Mapping = m
	return s, st.update(s)
}

// SetFilter updates the filter. A column change resets the value; any
// change to the filtered view's shape clears the selection, because
// positional indices are only meaningful for the view they were made
// against.
func (st *Store) SetFilter(id string, f csvtable.Filter) (*Session, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	if f.Column != s.Filter.Column {
		f.Value = ""
	}
	if f != s.Filter {
		s.Selected = []int{}
	}
	s.Filter = f
	return s, st.update(s)
}

// Toggle flips one row index in the selection, validated against the
// current filtered view.
func (st *Store) Toggle(id string, index int) (*Session, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.FilteredRows()) {
		return nil, fmt.Errorf("row index %d out of range", index)
	}
	sel := s.Selection()
	sel.Toggle(index)
	s.Selected = sel.Members()
	return s, st.update(s)
}

// SelectAll selects every row of the current filtered view.
func (st *Store) SelectAll(id string) (*Session, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	sel := s.Selection()
	sel.SelectAll(s.viewUniverse())
	s.Selected = sel.Members()
	return s, st.update(s)
}

// ClearSelection empties the selection.
func (st *Store) ClearSelection(id string) (*Session, error) {
	s, err := st.Get(id)
	if err != nil {
		return nil, err
	}
	sel := s.Selection()
	sel.Clear()
	s.Selected = sel.Members()
	return s, st.update(s)
}

func (st *Store) update(s *Session) error {
	s.UpdatedAt = time.Now().UTC()
	header, rows, parseErrors, mapping, filter, selected, err := marshalFields(s)
	if err != nil {
		return err
	}
	res, err := st.db.Exec(`
		UPDATE import_session
		SET header = $1, rows = $2, parse_errors = $3, mapping = $4, filter = $5, selected = $6, updated_at = $7
		WHERE id = $8
	`, header, rows, parseErrors, mapping, filter, selected, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (st *Store) Delete(id string) error {
	if _, err := st.db.Exec(`DELETE FROM import_session WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions not touched within ttl and returns how
// many were dropped.
func (st *Store) PurgeExpired(ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	res, err := st.db.Exec(`DELETE FROM import_session WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func marshalFields(s *Session) (header, rows, parseErrors, mapping, filter, selected string, err error) {
	parts := []struct {
		out *string
		v   any
	}{
		{&header, s.Header},
		{&rows, s.Rows},
		{&parseErrors, s.ParseErrors},
		{&mapping, s.Mapping},
		{&filter, s.Filter},
		{&selected, s.Selected},
	}
	for _, p := range parts {
		raw, mErr := json.Marshal(p.v)
		if mErr != nil {
			err = fmt.Errorf("encode session: %w", mErr)
			return
		}
		*p.out = string(raw)
	}
	return
}

func unmarshalFields(s *Session, header, rows, parseErrors, mapping, filter, selected string) error {
	parts := []struct {
		raw string
		v   any
	}{
		{header, &s.Header},
		{rows, &s.Rows},
		{parseErrors, &s.ParseErrors},
		{mapping, &s.Mapping},
		{filter, &s.Filter},
		{selected, &s.Selected},
	}
	for _, p := range parts {
		if err := json.Unmarshal([]byte(p.raw), p.v); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
	}
	return nil
}
