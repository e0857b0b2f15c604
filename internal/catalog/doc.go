// Package catalog holds the fixed table of well-known thread-safe types.
//
// # Overview
//
// Types land here only when annotating them in place is infeasible: they are
// defined in the standard library or in a third-party module. Everything else
// should be classified where it is declared.
//
// # Entry Kinds
//
// Standard library entries are [registry.Declared] values listing the type's
// real type parameters, so the builder validates their container-of names on
// every assembly. The declarations themselves are checked against the type
// checker's view of the standard library by this package's tests.
//
// Third-party entries are bare names. Their modules may not be in the build
// list of the package being analyzed, so nothing can be validated.
//
// # Order
//
// [Register] inserts entries in a fixed order. Later entries override earlier
// ones with the same name, including entries registered before Register is
// called (user extensions).
package catalog
