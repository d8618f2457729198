package logger

import (
	"fmt"
	"log/slog"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// HumanReadable records a generated identifier under "human_readable".
func HumanReadable(h string) slog.Attr {
	return slog.String("human_readable", h)
}

// Original records an original identifier under "original" using its
// String form.
func Original(id fmt.Stringer) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("original", id.String())
}

// SnapshotKey records the storage key of a snapshot under "snapshot_key".
func SnapshotKey(key string) slog.Attr {
	return slog.String("snapshot_key", key)
}

// Store records the snapshot backend name under "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Count records a number of registrations under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
