package config

import "os"

// readFile is a thin indirection over os.ReadFile so tests can stub it
// without touching the filesystem.
var readFile = os.ReadFile
