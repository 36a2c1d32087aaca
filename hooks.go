package keystow

// Hooks lightweight callbacks for high-signal store events.
// Implementations MUST be cheap and non-blocking; the store calls them
// inline on every operation. Wrap with hooks/async to offload.
type Hooks interface {
	// An entry was written. name is the backend-level entry name
	// (encoded key + extension), size the payload length in bytes.
	EntryWritten(name string, size int)

	// A remove was performed. existed reports whether anything was deleted.
	EntryRemoved(name string, existed bool)

	// A token found during enumeration could not be decoded back to the
	// key type and was dropped from the result.
	TokenSkipped(token string)

	// Clear finished; removed is the number of entries deleted.
	NamespaceCleared(removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryWritten(string, int)  {}
func (NopHooks) EntryRemoved(string, bool) {}
func (NopHooks) TokenSkipped(string)       {}
func (NopHooks) NamespaceCleared(int)      {}
