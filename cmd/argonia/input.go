package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

var errUsage = errors.New("usage")

// readPassword returns the password from the single remaining argument,
// from file, or from the first line of in, in that order.
func (a *app) readPassword(args []string, file string, in io.Reader) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: too many arguments", errUsage)
	case len(args) == 1 && file != "":
		return "", fmt.Errorf("%w: password given both as argument and --password-file", errUsage)
	case len(args) == 1:
		return args[0], nil
	case file != "":
		data, err := afero.ReadFile(a.fs, file)
		if err != nil {
			return "", fmt.Errorf("reading password file: %w", err)
		}
		return trimNewline(string(data)), nil
	default:
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		return trimNewline(line), nil
	}
}

// resolveHash takes the hash from file when given, otherwise from the first
// argument, and returns the arguments left over.
func (a *app) resolveHash(args []string, file string) (string, []string, error) {
	if file != "" {
		data, err := afero.ReadFile(a.fs, file)
		if err != nil {
			return "", nil, fmt.Errorf("reading hash file: %w", err)
		}
		return strings.TrimSpace(string(data)), args, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: missing hash argument", errUsage)
	}
	return args[0], args[1:], nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
