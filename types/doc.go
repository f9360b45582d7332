// Package types contains the shared types, interfaces, and sentinel errors
// used across the teamtrack library.
//
// The root teamtrack package re-exports the public surface of this package
// via type aliases. Internal packages depend on types directly, which keeps
// them free of import cycles with the root package.
package types
