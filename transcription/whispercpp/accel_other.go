//go:build !(darwin && metal)

package whispercpp

const metalSupport = false
