package hashmap

import "errors"

// ErrKeyNotFound indicates a Delete referenced an absent key. Lookup
// reports an absent key through its boolean result instead.
var ErrKeyNotFound = errors.New("hashmap: key not found")
