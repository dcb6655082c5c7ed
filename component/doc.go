// Package component defines the capability roles of the artist composition
// layer and the registry that binds role implementations to (API, Profile)
// pairs.
//
// A role is one named operation a back-end must supply for one context kind
// (load, free, read, bind, set, unbind, attach, use, reset). An adapter
// bundles one implementation per role into a Set and registers it:
//
//	func init() {
//	    component.MustRegister(API, artist.ProfileClassic, NewComponentSet(drv))
//	}
//
// Register validates the Set before accepting it, so an (API, Profile) pair
// with any missing role is rejected at process init and no entity of that
// configuration can ever be constructed. This is the registry analogue of a
// compile-time structural check: validation happens once per pair, not on
// each call.
package component
