package directory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// NotifierFactory builds the notification sink for one category.
type NotifierFactory func(category domain.Category) Notifier

// Manager hands out one Directory per category, created lazily on first use.
type Manager struct {
	store    Store
	notifier NotifierFactory
	logger   *zap.Logger

	mu   sync.Mutex
	dirs map[domain.Category]*Directory
}

// NewManager constructs the manager.
func NewManager(store Store, notifier NotifierFactory, logger *zap.Logger) *Manager {
	return &Manager{
		store:    store,
		notifier: notifier,
		logger:   logger,
		dirs:     make(map[domain.Category]*Directory),
	}
}

// Directory returns the instance bound to the category, creating it if
// needed. Instances persist for the lifetime of the manager, so each
// category's listing is fetched once and then kept in sync by mutations.
func (m *Manager) Directory(category domain.Category) *Directory {
	m.mu.Lock()
	defer m.mu.Unlock()
	dir, ok := m.dirs[category]
	if !ok {
		dir = New(category, m.store, m.notifier(category), m.logger)
		m.dirs[category] = dir
	}
	return dir
}
