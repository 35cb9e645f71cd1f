package main

import (
	"devenv-enabler/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// devenv-enabler is a cross-platform developer environment setup tool that:
//   - Detects the host operating system and the first available native package manager
//     (winget/choco/scoop on Windows, brew on macOS, apt/dnf/yum/pacman/zypper on Linux)
//   - Installs the packages belonging to a named profile (python, web, java, cpp, fullstack, ...)
//     through that package manager, using each manager's non-interactive install flags
//   - Installs the profile's VS Code extensions via the `code` CLI and merges a set of
//     default editor settings into the user's settings.json without clobbering existing keys
//   - Optionally provisions a coding font from a GitHub release into the user's font directory
//   - Generates starter project scaffolds (source file plus build descriptor) for the
//     profile's languages, never overwriting files the user already edited
//
// Error handling strategy:
//   - Individual package or extension failures are logged and tolerated so that a
//     multi-component run applies as much of the profile as possible
//   - Only an unknown profile or a machine with no supported package manager aborts
//     the run with a non-zero exit status
func main() {
	cmd.Execute()
}
