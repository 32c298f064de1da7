// Package errors provides the classified error primitives used across docsite.
//
// Two shapes live here:
//   - ConfigError: the single failure kind produced while resolving a site
//     descriptor. It names the component that rejected the input, the field
//     path inside the configuration, and the reason.
//   - ClassifiedError: a category/severity/retry envelope built through the
//     fluent ErrorBuilder. Loader, filesystem and git failures are reported
//     this way, and ConfigError converts into it via Classify.
//
// The CLI adapter turns either shape into a user-facing message and an exit
// code.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryFileSystem, "read site config").
//		WithContext("path", cfgPath).
//		Build()
package errors
