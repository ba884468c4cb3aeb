package bank

import "fmt"

// ValidationError rejects empty required input before any service call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SizeLimitError rejects a single oversized upload. Sibling files in the
// same batch are unaffected.
type SizeLimitError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("file %q is too large (%d bytes, limit %d). Compress it or split it", e.Name, e.Size, e.Limit)
}
