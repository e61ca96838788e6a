package metrics

import (
	"sync"

	"github.com/google/uuid"
)

// maxActivities bounds the recent-activity log.
const maxActivities = 10

// Activity kinds recorded by the dashboard.
const (
	KindCreate = "create"
	KindUpdate = "update"
	KindDelete = "delete"
)

// SalesPoint is one month of the sales series.
type SalesPoint struct {
	Month    string `json:"month"`
	Sales    int    `json:"sales"`
	Products int    `json:"products"`
}

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Activity is a display-only record of one catalog mutation.
type Activity struct {
	ID           string `json:"id"`
	Kind         string `json:"type"`
	ProductTitle string `json:"product"`
	ActorName    string `json:"user"`
	Timestamp    string `json:"timestamp"`
}

// Snapshot is the full dashboard state handed to readers.
type Snapshot struct {
	TotalProducts    int             `json:"totalProducts"`
	ActiveProducts   int             `json:"activeProducts"`
	TotalUsers       int             `json:"totalUsers"`
	TotalRevenue     int             `json:"totalRevenue"`
	SalesSeries      []SalesPoint    `json:"salesData"`
	Categories       []CategoryShare `json:"categoryData"`
	RecentActivities []Activity      `json:"recentActivities"`
}

// Store holds the dashboard aggregates and the bounded activity log.
// The counters are seeded baselines and deliberately not reconciled
// with the live catalog; only AddActivity mutates this store during
// normal operation. It writes to no other store.
type Store struct {
	mutex    sync.RWMutex
	snapshot Snapshot
}

// NewStore builds a store seeded with the baseline dashboard values.
func NewStore() *Store {
	return &Store{snapshot: seedSnapshot()}
}

// AddActivity prepends a record to the log and truncates it to the
// most recent entries.
func (s *Store) AddActivity(kind, productTitle, actorName string) {
	activity := Activity{
		ID:           uuid.NewString(),
		Kind:         kind,
		ProductTitle: productTitle,
		ActorName:    actorName,
		Timestamp:    "just now",
	}

	s.mutex.Lock()
	log := append([]Activity{activity}, s.snapshot.RecentActivities...)
	if len(log) > maxActivities {
		log = log[:maxActivities]
	}
	s.snapshot.RecentActivities = log
	s.mutex.Unlock()
}

// SetCounters overwrites the aggregate counters. Used by bootstrap
// seeding only.
func (s *Store) SetCounters(totalProducts, activeProducts, totalUsers, totalRevenue int) {
	s.mutex.Lock()
	s.snapshot.TotalProducts = totalProducts
	s.snapshot.ActiveProducts = activeProducts
	s.snapshot.TotalUsers = totalUsers
	s.snapshot.TotalRevenue = totalRevenue
	s.mutex.Unlock()
}

// SetSalesSeries replaces the monthly sales series.
func (s *Store) SetSalesSeries(series []SalesPoint) {
	replacement := make([]SalesPoint, len(series))
	copy(replacement, series)

	s.mutex.Lock()
	s.snapshot.SalesSeries = replacement
	s.mutex.Unlock()
}

// Snapshot returns a deep copy of the current dashboard state.
func (s *Store) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := s.snapshot
	out.SalesSeries = append([]SalesPoint(nil), s.snapshot.SalesSeries...)
	out.Categories = append([]CategoryShare(nil), s.snapshot.Categories...)
	out.RecentActivities = append([]Activity(nil), s.snapshot.RecentActivities...)
	return out
}

// RecentActivities returns a copy of the activity log, newest first.
func (s *Store) RecentActivities() []Activity {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]Activity(nil), s.snapshot.RecentActivities...)
}
