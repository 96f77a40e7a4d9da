// Package kernel provides shared domain primitives for the shipping label service.
//
// The package includes:
//   - UUID: A value object for label session identifiers
//   - Address: An immutable, structurally comparable postal address
//
// Both are value objects guarded by guard.ConstructorGuard, so a zero value
// fails Validate and must be replaced by one built through a constructor.
package kernel
