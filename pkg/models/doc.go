// Package models provides shared data types for monocheck.
//
// # Violations
//
// A [Violation] is one detected deviation from the expected monorepo
// layout. It comes in two kinds:
//   - [KindCacheDirectory]: a node_modules directory outside the repository root
//   - [KindManifestIssue]: a problem with the root package.json
//
// Violations are plain values. They are collected and reported, never
// returned as errors:
//
//	v := models.NewCacheDirectoryViolation("apps/web/node_modules")
//	fmt.Println(v) // apps/web/node_modules
package models
