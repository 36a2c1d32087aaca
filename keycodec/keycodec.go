// Package keycodec converts arbitrary key values to filesystem-safe string
// tokens and best-effort back again.
//
// Encoding is lossy: every reserved character collapses to '_', so distinct
// keys such as "a/b" and "a:b" encode to the same token and the later write
// wins. Callers needing collision freedom should pick key types that never
// contain reserved characters (integers, UUIDs).
package keycodec

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// reserved is the character set that cannot appear in entry file names.
const reserved = `<>:"/\|?*`

// Encode returns the token for key: its string form with every reserved
// character replaced by '_'. Deterministic and side-effect free; equal keys
// always yield equal tokens.
func Encode[K any](key K) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reserved, r) {
			return '_'
		}
		return r
	}, fmt.Sprint(key))
}

// Decode attempts to map a token back to a K. Because Encode is lossy this
// is best effort only: it is used when enumerating stored entries, where an
// undecodable token means the entry is skipped. Decode never panics and
// never returns an error; any conversion failure reports ok=false.
//
// String keys decode as the identity. Integer kinds and uuid.UUID parse
// strictly. Types implementing encoding.TextUnmarshaler get the token as
// text. Anything else goes through an fmt.Sscan fallback.
func Decode[K any](token string) (K, bool) {
	var key K
	switch p := any(&key).(type) {
	case *string:
		*p = token
		return key, true
	case *int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return zero[K](), false
		}
		*p = n
		return key, true
	case *int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return zero[K](), false
		}
		*p = n
		return key, true
	case *uint:
		n, err := strconv.ParseUint(token, 10, 0)
		if err != nil {
			return zero[K](), false
		}
		*p = uint(n)
		return key, true
	case *uint64:
		n, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return zero[K](), false
		}
		*p = n
		return key, true
	case *uuid.UUID:
		u, err := uuid.Parse(token)
		if err != nil {
			return zero[K](), false
		}
		*p = u
		return key, true
	}

	if tu, ok := any(&key).(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(token)); err != nil {
			return zero[K](), false
		}
		return key, true
	}

	if _, err := fmt.Sscan(token, &key); err != nil {
		return zero[K](), false
	}
	return key, true
}

func zero[K any]() K {
	var k K
	return k
}
