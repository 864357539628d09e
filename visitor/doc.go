// Package visitor offers callback-based iteration over key-value bearing
// containers: maps with any key type and struct values. Iteration order is
// deterministic (declared field order for structs, sorted keys for maps) so
// downstream consumers can materialize ordered representations.
package visitor
