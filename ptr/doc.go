// Package ptr implements Shared, a reference-counted ownership handle.
//
// A Shared owns a value through a detached control block: the count lives
// in a separate allocation shared by address among every alias, so any
// type can be owned without cooperating with the counter. When the last
// alias releases, the value is finalized exactly once, either through the
// function given to WithRelease or, failing that, through Close when *T is
// an io.Closer.
//
// Handles are not safe for concurrent use and ownership graphs must be
// acyclic.
//
//	db := ptr.New(openDB())
//	reader := db.Clone()   // count 2
//	_ = db.Release()       // count 1
//	_ = reader.Release()   // Close runs here
package ptr
