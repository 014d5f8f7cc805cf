package netlist

import "sync"

// RewireHooks receives events from rewiring operations. Passes register an
// implementation at startup to trace or meter mutations without the core
// depending on any logging framework.
type RewireHooks interface {
	// OnConnect fires after a port is attached to a net.
	OnConnect(net, cell, port string)

	// OnDisconnect fires after a port is detached from a net.
	OnDisconnect(net, cell, port string)

	// OnRenamePort fires after a port moves to a new name on its cell.
	OnRenamePort(cell, oldName, newName string)

	// OnRenameNet fires after a net moves to a new name.
	OnRenameNet(oldName, newName string)

	// OnReplacePort fires after a connection migrates between cells.
	OnReplacePort(oldCell, oldPort, newCell, newPort string)
}

// NoopRewireHooks is a no-op implementation of RewireHooks.
type NoopRewireHooks struct{}

func (NoopRewireHooks) OnConnect(string, string, string)             {}
func (NoopRewireHooks) OnDisconnect(string, string, string)          {}
func (NoopRewireHooks) OnRenamePort(string, string, string)          {}
func (NoopRewireHooks) OnRenameNet(string, string)                   {}
func (NoopRewireHooks) OnReplacePort(string, string, string, string) {}

var (
	hooks   RewireHooks = NoopRewireHooks{}
	hooksMu sync.RWMutex
)

// SetRewireHooks registers custom rewiring hooks. Call once at application
// startup, before any mutation passes run. A nil argument is ignored.
func SetRewireHooks(h RewireHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		hooks = h
	}
}

func rewireHooks() RewireHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hooks
}
