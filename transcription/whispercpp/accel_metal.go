//go:build darwin && metal

package whispercpp

// metalSupport is the build-time analog of GGML_USE_METAL: true only when
// the binary was built on darwin with the metal tag and the engine library
// was compiled with Metal kernels.
const metalSupport = true
