package genesis

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/validation"
	"go.uber.org/zap"
)

// 1 MB, long emoji sequences and hash lists stay well below it
const maxLineSize = 0x100000

func ReadLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// sourceCache reads every data file at most once per run.
type sourceCache struct {
	dataDir string
	lines   map[string][]string
}

func newSourceCache(dataDir string) *sourceCache {
	return &sourceCache{dataDir: dataDir, lines: make(map[string][]string)}
}

func (s *sourceCache) get(category, source string) ([]string, error) {
	if lines, ok := s.lines[source]; ok {
		return lines, nil
	}
	fn := filepath.Join(s.dataDir, source)
	raw, err := ReadLines(fn)
	if err != nil {
		return nil, &common.InputUnreadableError{Category: category, Path: fn, Err: err}
	}
	lines := validation.CleanLines(raw)
	zap.S().Debugf("Read %v: %d lines, %d kept", fn, len(raw), len(lines))
	s.lines[source] = lines
	return lines, nil
}
