package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks for each config value on w and reads answers from r, one per
// line. Empty answers (and EOF) keep the value from defaults.
func Prompt(r io.Reader, w io.Writer, defaults Config) (Config, error) {
	reader := bufio.NewReader(r)
	cfg := defaults

	var err error
	if cfg.UseTailwind, err = askBool(reader, w, "Use Tailwind CSS?", defaults.UseTailwind); err != nil {
		return Config{}, err
	}
	if cfg.UseChakra, err = askBool(reader, w, "Use Chakra UI?", defaults.UseChakra); err != nil {
		return Config{}, err
	}
	if cfg.DefaultLayout, err = askString(reader, w, "Default layout", defaults.DefaultLayout); err != nil {
		return Config{}, err
	}
	if cfg.PagesDir, err = askString(reader, w, "Pages directory", defaults.PagesDir); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func askBool(reader *bufio.Reader, w io.Writer, question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(w, "%s (%s): ", question, hint)
		answer, err := readLine(reader)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(w, "Please answer y or n.\n")
	}
}

func askString(reader *bufio.Reader, w io.Writer, question, def string) (string, error) {
	fmt.Fprintf(w, "%s [%s]: ", question, def)
	answer, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// readLine returns the trimmed next line. EOF with no pending input yields
// an empty answer so piped or closed stdin falls back to defaults.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
