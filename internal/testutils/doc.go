// Package testutils provides record fixtures and small helpers shared by the
// tests of the content packages. It must only be imported from _test.go files.
package testutils
