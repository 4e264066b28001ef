package qrgen

import (
	"fmt"
	"time"
)

const (
	HistoryKindText = "text"
	HistoryKindWifi = "wifi"
)

// HistoryEntry records one generated code. For wifi entries only the
// SSID label is kept; payloads and passwords are never persisted.
type HistoryEntry struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	FilePath  string    `json:"filePath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// History is the payload-free trail of what has been generated.
type History struct {
	store *TypeStore[HistoryEntry]
}

func NewHistory(sm *StoreManager) *History {
	return &History{store: GetTypeStore[HistoryEntry](sm)}
}

func (h *History) Record(entry HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	key := fmt.Sprintf("%d-%s", entry.CreatedAt.UnixNano(), entry.Label)
	return h.store.Set(key, entry)
}

func (h *History) List() ([]HistoryEntry, error) {
	values, keys, err := h.store.All()
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, values[k])
	}
	return entries, nil
}

func (h *History) Clear() error {
	return h.store.Clear()
}

// Presets stores named color presets in the same database.
type Presets struct {
	store *TypeStore[ColorPreset]
}

func NewPresets(sm *StoreManager) *Presets {
	return &Presets{store: GetTypeStore[ColorPreset](sm)}
}

func (p *Presets) Set(name string, preset ColorPreset) error {
	if name == "" {
		return &ValidationError{Field: "preset", Reason: "name must not be empty"}
	}
	return p.store.Set(name, preset)
}

func (p *Presets) Get(name string) (ColorPreset, error) {
	return p.store.Get(name)
}

func (p *Presets) Delete(name string) error {
	return p.store.Del(name)
}

func (p *Presets) All() (map[string]ColorPreset, error) {
	values, _, err := p.store.All()
	return values, err
}
