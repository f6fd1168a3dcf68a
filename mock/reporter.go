package mock

import (
	"fmt"
	"sync"

	"github.com/pwalczak/gloss"
)

var _ gloss.Reporter = (*Reporter)(nil)

// Reporter records reported messages for assertions.
type Reporter struct {
	mu       sync.Mutex
	Statuses []string
	Infos    []string
	Warnings []string
}

func (r *Reporter) Statusf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Statuses = append(r.Statuses, fmt.Sprintf(format, args...))
}

func (r *Reporter) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

func (r *Reporter) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
