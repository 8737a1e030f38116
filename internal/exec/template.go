package exec

import (
	"os"
	"strings"

	"github.com/0x4ndy/nansi/internal/errors"
)

// ExpandArg substitutes {NAME} references in an argument with the values
// of the named environment variables.
//
// The scan is a single pass with one-character lookback. A '{' is a
// delimiter unless the previous character is '\' or '$', which keeps
// shell-style "${VAR}" and "\{literal}" sequences untouched. A '}' is a
// delimiter unless the previous character is '\'. An unescaped '{' inside
// an already open reference is a malformed template. Escaped delimiters
// seen inside an open reference are dropped from the collected name.
//
// Substitution is two-pass: all reference names are collected first, then
// each is replaced as a literal "{NAME}" substring across the whole
// argument. A value inserted by an earlier replacement can therefore be
// rewritten by a later one when it textually contains that placeholder.
//
// A reference to an undefined variable fails the whole run: the command
// cannot be meaningfully constructed without it.
func ExpandArg(arg string) (string, error) {
	runes := []rune(arg)

	var names []string
	var name strings.Builder
	recording := false

	for i, c := range runes {
		switch c {
		case '{':
			if i == 0 || (runes[i-1] != '\\' && runes[i-1] != '$') {
				if recording {
					return "", errors.NewUnbalancedBracesError(arg)
				}
				recording = true
			}
		case '}':
			if i == 0 || runes[i-1] != '\\' {
				if recording {
					recording = false
					names = append(names, name.String())
					name.Reset()
				}
			}
		default:
			if recording {
				name.WriteRune(c)
			}
		}
	}

	expanded := arg
	for _, n := range names {
		value, ok := os.LookupEnv(n)
		if !ok {
			return "", errors.NewUndefinedVarError(n, arg)
		}
		expanded = strings.ReplaceAll(expanded, "{"+n+"}", value)
	}

	return expanded, nil
}

// expandArgs templates every argument of an item's argument vector.
func expandArgs(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		value, err := ExpandArg(arg)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, value)
	}
	return expanded, nil
}
