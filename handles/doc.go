// Package handles opens infrastructure clients behind ptr.Shared so that
// several components can hold the same client and the client is closed
// when the last of them releases it.
//
//	db, err := handles.OpenPebble(dir, nil)
//	...
//	index := db.Clone()
//	defer index.Release()
package handles
