package configutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// CredentialDir is where service binding certificates and keys are written.
var CredentialDir = "/tmp"

// MaterializeContentInFile writes content to CredentialDir/folderName/fileName
// with owner-only permissions and returns the path. The file is replaced
// atomically so a restarting process never reads a half-written key.
func MaterializeContentInFile(folderName, fileName, content string) (string, error) {
	dir := filepath.Join(CredentialDir, folderName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating credential directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+fileName+"-*")
	if err != nil {
		return "", fmt.Errorf("creating credential file in %s: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("writing credential file %s: %w", fileName, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fileName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("moving credential file into %s: %w", path, err)
	}
	return path, nil
}
