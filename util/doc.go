// Package util provides small shared helpers with no project dependencies.
package util
