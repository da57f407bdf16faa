package project

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

const keyLength = 32

// GenerateKey returns a base64 encoded random application key with the
// "base64:" prefix.
func GenerateKey(random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, keyLength)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return "base64:" + base64.StdEncoding.EncodeToString(buf), nil
}

// WriteEnvValue sets name=value in the env file at path and exports it to
// the current process. Only the line assigning name is replaced (or
// appended); every other line is kept as written.
func WriteEnvValue(path, name, value string) error {
	mode := os.FileMode(0644)
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	assignment := regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?` + regexp.QuoteMeta(name) + `[ \t]*=[^\r\n]*`)
	line := name + "=" + value

	var updated []byte
	if loc := assignment.FindIndex(content); loc != nil {
		updated = append(updated, content[:loc[0]]...)
		updated = append(updated, line...)
		updated = append(updated, content[loc[1]:]...)
	} else {
		updated = append(updated, content...)
		if len(updated) > 0 && !bytes.HasSuffix(updated, []byte("\n")) {
			updated = append(updated, '\n')
		}
		updated = append(updated, line+"\n"...)
	}

	if err := os.WriteFile(path, updated, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s after update: %w", path, err)
	}
	if values[name] != value {
		return fmt.Errorf("%s in %s does not hold the written value", name, path)
	}
	return os.Setenv(name, value)
}
