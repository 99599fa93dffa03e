package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func Contains[T comparable](slice []T, element T) bool {
	for _, v := range slice {
		if v == element {
			return true
		}
	}
	return false
}

func GenerateRandomFilename(extension string) string {
	id := uuid.New()
	return fmt.Sprintf("%s.%s", id.String(), extension)
}

// SanitizeForDB turns a dataset name into something safe to use in a
// filesystem path for the snapshot database.
func SanitizeForDB(name string) string {
	s := name
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ToLower(s)
	return s
}
