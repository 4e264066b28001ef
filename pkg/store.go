package qrgen

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// StoreManager owns the sqlite database holding color presets and the
// generation history. Wi-Fi payloads and passwords are never written
// here.
type StoreManager struct {
	DBPath  string
	DB      *sql.DB
	WriteMu sync.Mutex
}

func NewStoreManager(dbPath string) (*StoreManager, error) {
	store := &StoreManager{DBPath: dbPath}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	store.DB = db

	return store, nil
}

func (sm *StoreManager) Close() error {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	if sm.DB != nil {
		return sm.DB.Close()
	}
	return nil
}

func (sm *StoreManager) ensureTableExists(tableName string) {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	_, err := sm.DB.Exec(fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            key TEXT UNIQUE NOT NULL,
            value JSON NOT NULL
        )
    `, tableName))
	if err != nil {
		fmt.Println("Error creating table:", err)
	}
}

// GetTypeStore returns a keyed JSON store for T, one table per type.
func GetTypeStore[T any](sm *StoreManager) *TypeStore[T] {
	typeName := reflect.TypeOf((*T)(nil)).Elem().Name()
	tableName := strings.ToLower(strings.ReplaceAll(typeName, "_", ""))
	sm.ensureTableExists(tableName)
	return &TypeStore[T]{sm: sm, mu: &sm.WriteMu, Table: tableName}
}

type TypeStore[T any] struct {
	sm    *StoreManager
	mu    *sync.Mutex
	Table string
}

func (ts *TypeStore[T]) Set(key string, value T) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	valueBytes, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = ts.sm.DB.Exec(fmt.Sprintf("INSERT OR REPLACE INTO %s (key, value) VALUES (?, ?)", ts.Table), key, valueBytes)
	return err
}

func (ts *TypeStore[T]) Get(key string) (T, error) {
	var valueBytes []byte
	err := ts.sm.DB.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE key = ?", ts.Table), key).Scan(&valueBytes)
	if err != nil {
		return *new(T), err
	}

	var value T
	err = json.Unmarshal(valueBytes, &value)
	return value, err
}

func (ts *TypeStore[T]) Del(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	_, err := ts.sm.DB.Exec(fmt.Sprintf("DELETE FROM %s WHERE key = ?", ts.Table), key)
	return err
}

// All returns every stored value in insertion order, keyed.
func (ts *TypeStore[T]) All() (map[string]T, []string, error) {
	rows, err := ts.sm.DB.Query(fmt.Sprintf("SELECT key, value FROM %s ORDER BY id", ts.Table))
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	values := map[string]T{}
	var keys []string
	for rows.Next() {
		var key string
		var valueBytes []byte
		if err := rows.Scan(&key, &valueBytes); err != nil {
			return nil, nil, err
		}

		var value T
		if err := json.Unmarshal(valueBytes, &value); err != nil {
			return nil, nil, err
		}
		values[key] = value
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return values, keys, nil
}

// Clear drops every row for the type.
func (ts *TypeStore[T]) Clear() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	_, err := ts.sm.DB.Exec(fmt.Sprintf("DELETE FROM %s", ts.Table))
	return err
}
