// Package iohistory persists run history across reconciliation runs.
package iohistory

import (
	"sync"

	"github.com/qafoundry/tracematrix/internal/contract"
)

// RunStoreManager guards the shared RunStore instance.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

// GetRunStore returns the run-history RunStore, or nil when no backend is
// configured.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
