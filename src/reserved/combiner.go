package reserved

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/overline-mining/dasgen/src/common"
	probar "github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const (
	DEFAULT_INPUT_DIR   = "raw-reserved-accounts"
	DEFAULT_OUTPUT_FILE = "data/reserved_accounts.txt"
	ACCOUNT_SUFFIX      = ".bit"
)

var accountPattern = regexp.MustCompile(`([^\s]+\.bit)`)

// ExtractAccounts finds every "<name>.bit" in text and returns the names
// without suffix, ASCII lowercased, in order of appearance.
func ExtractAccounts(text string) []string {
	matches := accountPattern.FindAllString(text, -1)
	accounts := make([]string, 0, len(matches))
	for _, m := range matches {
		accounts = append(accounts, asciiLower(strings.TrimSuffix(m, ACCOUNT_SUFFIX)))
	}
	return accounts
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// Combine collects the accounts of every file directly in inputDir, sorted
// and deduplicated. Progress goes to progress, which may be nil.
func Combine(inputDir string, progress io.Writer) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, &common.InputUnreadableError{Category: "reserved accounts", Path: inputDir, Err: err}
	}
	if progress == nil {
		progress = io.Discard
	}
	bar := probar.NewOptions(len(entries),
		probar.OptionSetWriter(progress),
		probar.OptionSetDescription("combining reserved accounts ->"),
	)

	accounts := make([]string, 0)
	for _, entry := range entries {
		bar.Add(1)
		if entry.IsDir() {
			continue
		}
		fn := filepath.Join(inputDir, entry.Name())
		raw, err := os.ReadFile(fn)
		if err != nil {
			return nil, &common.InputUnreadableError{Category: "reserved accounts", Path: fn, Err: err}
		}
		found := ExtractAccounts(string(raw))
		zap.S().Debugf("%v: %d accounts", fn, len(found))
		accounts = append(accounts, found...)
	}
	bar.Finish()

	sort.Strings(accounts)
	accounts = dedupSorted(accounts)
	zap.S().Infof("Combined %d reserved accounts from %d files", len(accounts), len(entries))
	return accounts, nil
}

func dedupSorted(items []string) []string {
	if len(items) < 2 {
		return items
	}
	out := items[:1]
	for _, item := range items[1:] {
		if out[len(out)-1] != item {
			out = append(out, item)
		}
	}
	return out
}

// WriteAccounts writes one account per line, without a trailing newline.
func WriteAccounts(filename string, accounts []string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(strings.Join(accounts, "\n")), 0644)
}
