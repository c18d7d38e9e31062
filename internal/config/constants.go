package config

// Version is the current Poly version. Set at build time via -ldflags or by
// writing to this file.
var Version = "0.1.0"

// SourceFileExt is the extension of module source files.
const SourceFileExt = ".poly"
