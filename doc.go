// Package keystow implements a backend-agnostic key-value persistence store.
// Callers store and retrieve serializable values by key without depending on
// the storage medium; the medium is a pluggable Backend (in-memory map,
// directory on disk, per-application data directory, throwaway temp
// directory, bounded cache).
//
// Components:
//   - Backend: byte store scoped to a namespace (memory map, directory, ...).
//   - Serializer[V]: (de)serializes V <-> []byte. JSON is the reference.
//   - keycodec: maps arbitrary keys to filesystem-safe tokens and back.
//
// Layout (file-backed backends):
//
//	<namespace>/<encodedKey>.json  - one file per key, serializer output verbatim
//
// Writes to file-backed backends go through a write-temp/delete/rename
// sequence so a concurrent reader never observes a partially written file.
// The sequence is not atomic end-to-end: a crash between the delete and the
// rename leaves no file at the final path. Key encoding is lossy (reserved
// filesystem characters collapse to '_'), so distinct keys can collide on
// the same token; the later write wins.
//
// Usage:
//
//	st, _ := keystow.New[string, User](keystow.Options[string, User]{
//	    Backend:    dirfs.New("/var/lib/app/users"),
//	    Serializer: serializer.JSON[User]{},
//	})
//	_ = st.Store(ctx, "u:1", &user)
//	u, ok, _ := st.Retrieve(ctx, "u:1")
package keystow
