// Package store defines persistence interfaces and the sentinel errors
// shared by all store implementations.
package store
