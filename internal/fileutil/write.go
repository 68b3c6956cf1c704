package fileutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Outcome reports what a write did.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeSkipped     Outcome = "skipped"
)

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("inspecting %s: %w", path, err)
}

// WriteIfAbsent writes contents to path only when nothing is there yet.
// It returns true when the file was created.
func WriteIfAbsent(path string, contents []byte) (bool, error) {
	exists, err := Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := write(path, contents); err != nil {
		return false, err
	}
	return true, nil
}

// WriteWithForcePolicy writes contents to path unless the file exists and
// force is false.
func WriteWithForcePolicy(path string, contents []byte, force bool) (Outcome, error) {
	exists, err := Exists(path)
	if err != nil {
		return "", err
	}
	if exists && !force {
		return OutcomeSkipped, nil
	}
	if err := write(path, contents); err != nil {
		return "", err
	}
	if exists {
		return OutcomeOverwritten, nil
	}
	return OutcomeCreated, nil
}

// AppendLineIfMissing adds line to the file at path unless an identical line
// (ignoring surrounding whitespace) is already present. Existing content is
// never rewritten. It returns true when the file changed.
func AppendLineIfMissing(path, line string) (bool, error) {
	line = strings.TrimSpace(line)
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := write(path, []byte(line+"\n")); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(existing))
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == line {
			return false, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("scanning %s: %w", path, err)
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	buf.WriteByte('\n')
	if err := write(path, buf.Bytes()); err != nil {
		return false, err
	}
	return true, nil
}

func write(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, contents, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
