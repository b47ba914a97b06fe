// Package fn provides value-style wrappers around any invocable with a
// fixed signature.
//
// Func owns its invocable and deep-copies it on Clone through the
// invocable's own Clone method. SharedFunc holds its invocable through a
// ptr.Shared, so clones alias one implementation and only bump a count.
//
// Signatures have one argument and one result. Several arguments travel as
// a struct; Unit stands in for "no argument" or "no result".
//
// Calling an empty wrapper is not an error: Call returns the zero value of
// the result type. TryCall reports ErrEmpty instead, for callers that need
// to tell the two apart.
package fn
