package logger

import "sync"

// Named component loggers. Most callers go through Get, which falls back
// to a component-tagged view of the global logger, so registration is
// optional and only useful for components that want a customized logger.
var (
	regMu   sync.RWMutex
	loggers = make(map[string]*Logger)
)

// Register stores l under name, replacing any earlier registration.
func Register(name string, l *Logger) {
	regMu.Lock()
	defer regMu.Unlock()
	loggers[name] = l
}

// Get returns the logger registered under name. Unregistered names get
// the global logger tagged with the component name, so Get never returns
// nil once Init has run.
func Get(name string) *Logger {
	regMu.RLock()
	l, ok := loggers[name]
	regMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults seeds the registry with component-tagged views of the
// global logger. Call it after Init.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
