package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// stateFile is the on-disk shape of the saved buffers.
type stateFile struct {
	SavedAt time.Time               `json:"saved_at"`
	Coins   map[string]*CoinHistory `json:"coins"`
}

// Load restores buffers from the state file so a restart does not redo the
// warm-up. A missing file leaves the store empty.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for sym, h := range state.Coins {
		if h == nil {
			continue
		}
		h.Symbol = sym
		h.M1 = trim(h.M1, Cap1m)
		h.M5 = trim(h.M5, Cap5m)
		h.M15 = trim(h.M15, Cap15m)
		h.H1 = trim(h.H1, Cap1h)
		s.coins[sym] = h
	}
	return nil
}

// Save writes all buffers to the state file.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	state := stateFile{SavedAt: time.Now(), Coins: s.coins}
	data, err := json.MarshalIndent(state, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
