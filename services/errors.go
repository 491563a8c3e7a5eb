package services

import "fmt"

// FetchError covers everything that can go wrong retrieving the remote menu:
// network failure, bad status, malformed JSON, unparsable price. The batch is
// all-or-nothing, so one bad record fails the whole fetch.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("menu fetch failed: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// StoreError wraps a failed local-store operation. Callers log it and treat
// the cache as absent; it is never fatal to a screen.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s failed: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }
