package main

// Exit codes used across commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no repository, invalid paths)
	ExitDataError   = 3 // Data error (corrupt catalog, validation failure)
)
