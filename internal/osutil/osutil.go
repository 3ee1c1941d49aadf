package osutil

import (
	"os"
	"runtime"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const DirPermission = 0o755

// Exit terminates the process with the given code.
func Exit(code exitCode) {
	os.Exit(int(code))
}

// Editor returns the command used to open files for editing: $VISUAL, then
// $EDITOR, then a platform default.
func Editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}

	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
