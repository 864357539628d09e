package visitor

// Visitor visits pairs of (key, element), calling the provided callback for
// each pair. If the callback returns (false, nil), the visit stops early.
// If the callback returns an error, the visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
