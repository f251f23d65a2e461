package util

import (
	"errors"
	"strings"
)

var errCorrupted = errors.New("file content discarded")

var prohibitReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", "?", "_", "%", "_", "*", "_",
	":", "_", "|", "_", "\"", "_", "<", "_", ">", "_",
)

// Replaces all prohibit characters with a sign "_"
func ReplaceProhibitCharacters(s string) string {
	return prohibitReplacer.Replace(s)
}
