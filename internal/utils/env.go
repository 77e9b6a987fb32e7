package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file for development runs. The working directory is
// tried first, then the nearest ancestor containing a go.mod, so `wails dev`
// picks up the repo-root .env regardless of where it was launched from.
func LoadEnv() error {
	if err := godotenv.Load(); err == nil {
		return nil
	}

	root, err := findModuleRoot()
	if err != nil {
		return err
	}
	return godotenv.Load(filepath.Join(root, ".env"))
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
