package sentiment

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

// Loader produces a ready Backend, typically by probing the sidecar's
// health endpoint for its label order.
type Loader func(ctx context.Context) (*Backend, error)

// Registry owns backend lifecycle. Loading happens once, on first use,
// across all goroutines. A backend that fails to load stays nil and the
// rest keep working.
type Registry struct {
	mu       sync.Mutex
	loaded   atomic.Bool
	loaders  map[BackendID]Loader
	backends map[BackendID]*Backend
	logger   logger.Logger
}

// NewRegistry creates a registry over the given loaders.
func NewRegistry(loaders map[BackendID]Loader, log logger.Logger) *Registry {
	return &Registry{
		loaders:  loaders,
		backends: make(map[BackendID]*Backend),
		logger:   log,
	}
}

// EnsureLoaded loads every backend exactly once. Double-checked so the
// hot path is a single atomic read. Individual load failures are logged
// and absorbed; the registry is considered loaded either way.
func (r *Registry) EnsureLoaded(ctx context.Context) {
	if r.loaded.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded.Load() {
		return
	}

	for id, load := range r.loaders {
		backend, err := load(ctx)
		if err != nil {
			r.logger.Error("backend load failed",
				logger.String("backend", string(id)),
				logger.Error(err),
			)
			continue
		}
		r.backends[id] = backend
		r.logger.Info("backend loaded",
			logger.String("backend", string(id)),
			logger.String("model_version", backend.ModelVersion),
			logger.Strings("labels", backend.Labels),
		)
	}

	r.loaded.Store(true)
}

// ForLanguage returns the loaded backends for a language branch:
// the Japanese ensemble for ja, the multilingual backend otherwise.
func (r *Registry) ForLanguage(lang domain.Language) []*Backend {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []BackendID
	if lang == domain.LanguageJapanese {
		ids = []BackendID{BackendJapanese1, BackendJapanese2}
	} else {
		ids = []BackendID{BackendMultilingual}
	}

	out := make([]*Backend, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.backends[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// AnyAvailable reports whether at least one backend loaded.
func (r *Registry) AnyAvailable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.backends) > 0
}

// BackendStatus describes one backend slot for health reporting.
type BackendStatus struct {
	ID           BackendID `json:"id"`
	Loaded       bool      `json:"loaded"`
	ModelVersion string    `json:"model_version,omitempty"`
}

// Status returns the load state of every configured backend slot.
func (r *Registry) Status() []BackendStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]BackendStatus, 0, len(r.loaders))
	for id := range r.loaders {
		status := BackendStatus{ID: id}
		if b, ok := r.backends[id]; ok {
			status.Loaded = true
			status.ModelVersion = b.ModelVersion
		}
		out = append(out, status)
	}
	return out
}
