package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// BestHeightStore persists the single best-height scalar.
type BestHeightStore interface {
	LoadBestHeight() int
	SaveBestHeight(height int)
}

// MemoryStore keeps the best height in memory only.
type MemoryStore struct {
	Best  int
	Saves int // number of SaveBestHeight calls
}

func (m *MemoryStore) LoadBestHeight() int {
	return m.Best
}

func (m *MemoryStore) SaveBestHeight(height int) {
	m.Best = height
	m.Saves++
}

// SavedBest represents the best height stored on disk
type SavedBest struct {
	Height int `json:"height"`
}

const bestItemKey = "best"

// GDataStore stores the best height with gdata.
type GDataStore struct {
	manager *gdata.Manager
}

// OpenGDataStore initializes the gdata manager for the app's save data
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &GDataStore{manager: m}, nil
}

// LoadBestHeight returns 0 when nothing was saved yet or the data is unreadable.
func (s *GDataStore) LoadBestHeight() int {
	data, err := s.manager.LoadItem(bestItemKey)
	if err != nil {
		log.Printf("Warning: Could not load best height: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var saved SavedBest
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved best height: %v", err)
		return 0
	}
	return saved.Height
}

func (s *GDataStore) SaveBestHeight(height int) {
	data, err := json.Marshal(SavedBest{Height: height})
	if err != nil {
		log.Printf("Warning: Could not serialize best height: %v", err)
		return
	}
	if err := s.manager.SaveItem(bestItemKey, data); err != nil {
		log.Printf("Warning: Could not save best height: %v", err)
	}
}
