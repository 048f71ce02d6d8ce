// Package reports holds the in-memory report registry and the controller
// that drives the extraction pipeline over it.
package reports

import (
	"sort"
	"sync"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

// Store is the registry of reports keyed by (year, quarter). The only writer
// is the controller's process path. Two concurrent processes of the same key
// both run extraction and the last Put wins; that is accepted because the
// source images are immutable and both runs converge to the same result.
type Store interface {
	List() []domain.ReportKey
	Get(key domain.ReportKey) (domain.Report, bool)
	Put(report domain.Report)
}

type memoryStore struct {
	mu      sync.RWMutex
	reports map[domain.ReportKey]domain.Report
}

// NewStore builds a store pre-seeded with the given reports.
func NewStore(seeds ...domain.Report) Store {
	s := &memoryStore{reports: make(map[domain.ReportKey]domain.Report, len(seeds))}
	for _, r := range seeds {
		s.reports[r.Key()] = r
	}
	return s
}

func (s *memoryStore) List() []domain.ReportKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]domain.ReportKey, 0, len(s.reports))
	for k := range s.reports {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Quarter < keys[j].Quarter
	})
	return keys
}

func (s *memoryStore) Get(key domain.ReportKey) (domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[key]
	return r, ok
}

func (s *memoryStore) Put(report domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[report.Key()] = report
}
