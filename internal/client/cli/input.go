package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetText reads a single line and falls back to def when the user just
// presses Enter. The default is shown in the prompt.
func GetText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, def), w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetNumber reads a numeric value, falling back to def on an empty line.
// The min/max bounds are advisory only: a value outside them triggers a
// warning but is returned unchanged, never clamped or rejected. The server
// validates authoritatively.
func GetNumber(reader *bufio.Reader, prompt string, def, min, max float64, w io.Writer) (float64, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%v]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	if v < min || v > max {
		fmt.Fprintf(w, "note: %v is outside the suggested range %v..%v\n", v, min, max)
	}
	return v, nil
}

// GetInt is GetNumber for integer-valued fields. The same advisory bound
// policy applies; a fractional value is an error rather than a silent
// truncation.
func GetInt(reader *bufio.Reader, prompt string, def, min, max int, w io.Writer) (int, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", line)
	}
	if v < min || v > max {
		fmt.Fprintf(w, "note: %d is outside the suggested range %d..%d\n", v, min, max)
	}
	return v, nil
}

// GetBool reads a y/n answer, falling back to def on an empty line.
func GetBool(reader *bufio.Reader, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, hint), w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
