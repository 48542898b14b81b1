package validation

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// CleanLines trims every line and drops the blank ones.
func CleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseAccountHash reads a hex account hash, with or without 0x, and
// truncates it to an account id of width bytes.
func ParseAccountHash(line string, width int) ([]byte, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "0x") && !strings.HasPrefix(line, "0X") {
		line = "0x" + line
	}
	raw, err := hexutil.Decode(line)
	if err != nil {
		return nil, errors.Wrapf(err, "account hash %q", line)
	}
	if len(raw) < width {
		return nil, errors.Errorf("account hash %q is %d bytes, an id needs %d", line, len(raw), width)
	}
	return raw[:width], nil
}
