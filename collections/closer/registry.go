package closer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/LerianStudio/lib-collections/collections/internal/nilcheck"
	"github.com/LerianStudio/lib-collections/collections/log"
)

// ErrRegistryClosed is returned when Register is called after Close.
var ErrRegistryClosed = errors.New("closer registry already closed")

type entry struct {
	name   string
	closer io.Closer
}

// Registry is an ordered teardown stack for owned resources.
//
// Resources are registered in acquisition order and closed in reverse, so
// dependents go down before their dependencies. Close runs at most once;
// later calls return the first result. Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	closed  bool
	err     error
	logger  log.Logger
}

// NewRegistry creates a Registry. If logger is nil, a no-op logger is used so
// the registry is nil-safe throughout its lifecycle.
func NewRegistry(logger log.Logger) *Registry {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Registry{logger: logger}
}

// Register appends a named resource to the teardown stack and takes ownership
// of it: the registry becomes responsible for the single Close call. Nil
// closers are ignored. Registering after Close returns ErrRegistryClosed and
// leaves the resource with the caller.
func (reg *Registry) Register(name string, c io.Closer) error {
	if reg == nil || nilcheck.Interface(c) {
		return nil
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.closed {
		return ErrRegistryClosed
	}

	reg.entries = append(reg.entries, entry{name: name, closer: c})

	return nil
}

// Len returns the number of resources currently registered.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	return len(reg.entries)
}

// Close releases every registered resource in LIFO order.
//
// A failed Close is logged and recorded but does not stop the teardown; the
// collected failures are returned as a single joined error. The context is
// used for log correlation only: teardown always runs to completion, since
// abandoning half-closed resources would leak them. Subsequent calls return
// the result of the first.
func (reg *Registry) Close(ctx context.Context) error {
	if reg == nil {
		return nil
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.closed {
		return reg.err
	}

	reg.closed = true

	var errs []error

	for i := len(reg.entries) - 1; i >= 0; i-- {
		ent := reg.entries[i]

		if err := ent.closer.Close(); err != nil {
			reg.logger.Log(ctx, log.LevelError, "resource close failed",
				log.String("resource", ent.name),
				log.Err(err),
			)
			errs = append(errs, fmt.Errorf("close %s: %w", ent.name, err))

			continue
		}

		reg.logger.Log(ctx, log.LevelDebug, "resource closed",
			log.String("resource", ent.name),
		)
	}

	reg.entries = nil
	reg.err = errors.Join(errs...)

	return reg.err
}
