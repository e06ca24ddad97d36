package whispercpp

import "github.com/skillsenselab/whisperkit/version"

// Capabilities describes what this binding build supports.
type Capabilities struct {
	// MetalAvailable is true only when the binary was built with Metal
	// offload support. It is a build property, not a runtime hardware check.
	MetalAvailable bool `json:"metal_available"`
	// Version identifies the binding build, not the underlying engine.
	Version string `json:"version"`
}

// caps is computed once at process start and is read-only afterwards.
var caps = Capabilities{
	MetalAvailable: metalSupport,
	Version:        version.Version,
}

// GetCapabilities returns the build capabilities. The result is constant
// for the lifetime of the process.
func GetCapabilities() Capabilities { return caps }

// MetalAvailable reports whether Metal offload support was compiled in.
func MetalAvailable() bool { return caps.MetalAvailable }
