package utils

import (
	"fmt"
	"os"
)

func DeleteDatabaseFileIfExists(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check if file exists at path %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path %s is a directory, not a file", path)
	}

	err = os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to delete database file at path %s: %w", path, err)
	}

	return nil
}
