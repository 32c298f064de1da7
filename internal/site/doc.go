// Package site resolves a declarative documentation-site configuration into
// an immutable SiteDescriptor.
//
// Resolution is a single synchronous pass with no I/O:
//
//  1. ResolvePresets merges preset defaults with the owner's per-area overrides.
//  2. ComposeTheme merges the base theme with theme overrides and validates it.
//  3. BuildNavigation partitions navbar items and deduplicates footer sections.
//  4. Assembler.Assemble runs the stages in order and is the only constructor
//     of SiteDescriptor.
//
// Every stage returns new values; inputs, including the preset defaults held
// by an Assembler, are never modified. Failures are *errors.ConfigError values
// naming the component, the field path and the reason.
package site
