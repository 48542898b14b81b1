package database

import (
	"bytes"
	"encoding/binary"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/emitter"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/overline-mining/dasgen/src/witness"
	lz4 "github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var LedgerContentHashes = []byte("DASGEN-CONTENT-HASHES")
var LedgerRecordLines = []byte("DASGEN-RECORD-LINES")
var LedgerInfo = []byte("DASGEN-INFO")

var lastNetworkKey = []byte("LastNetwork")
var lastVersionKey = []byte("LastVersion")

const (
	lineRaw byte = 0
	lineLZ4 byte = 1
)

type LedgerConfig struct {
	CacheSize int `json:"cacheSize"` // content hashes kept in memory
}

func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		CacheSize: 256,
	}
}

// Ledger remembers what the previous run generated so that a new run can
// report which config cells actually changed.
type Ledger struct {
	Config      LedgerConfig
	db          *bolt.DB
	mu          sync.Mutex
	lookupCache *lru.ARCCache
}

// Changes is the outcome of comparing a run against the ledger.
// When the ledger was written for another network every cell counts as
// changed.
type Changes struct {
	Changed         []witness.DataType
	Unchanged       []witness.DataType
	NetworkSwitched bool
}

func (l *Ledger) Open(filepath string) error {
	var err error
	if l.Config.CacheSize <= 0 {
		l.Config = DefaultLedgerConfig()
	}
	l.lookupCache, err = lru.NewARC(l.Config.CacheSize)
	if err != nil {
		return err
	}
	l.db, err = bolt.Open(filepath, 0600, nil)
	if err != nil {
		return &common.InputUnreadableError{Category: "ledger", Path: filepath, Err: err}
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{LedgerContentHashes, LedgerRecordLines, LedgerInfo} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *Ledger) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func ledgerKey(dataType witness.DataType) []byte {
	return molecule.Uint32(uint32(dataType))
}

// LastNetwork is the network of the previous recorded run, empty for a new
// ledger.
func (l *Ledger) LastNetwork() (string, error) {
	var network string
	err := l.db.View(func(tx *bolt.Tx) error {
		network = string(tx.Bucket(LedgerInfo).Get(lastNetworkKey))
		return nil
	})
	return network, err
}

// ContentHash returns the 0x content hash recorded for dataType.
func (l *Ledger) ContentHash(dataType witness.DataType) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.lookupCache.Get(dataType); ok {
		return cached.(string), true, nil
	}
	var hash string
	err := l.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(LedgerContentHashes).Get(ledgerKey(dataType))
		if raw != nil {
			hash = common.Hex(raw)
		}
		return nil
	})
	if err != nil || hash == "" {
		return "", false, err
	}
	l.lookupCache.Add(dataType, hash)
	return hash, true, nil
}

// Line returns the printed record recorded for dataType.
func (l *Ledger) Line(dataType witness.DataType) (string, bool, error) {
	var line string
	var ok bool
	err := l.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(LedgerRecordLines).Get(ledgerKey(dataType))
		if stored == nil {
			return nil
		}
		decoded, err := decodeLine(stored)
		if err != nil {
			return errors.Wrapf(err, "ledger line of %v", dataType)
		}
		line, ok = string(decoded), true
		return nil
	})
	return line, ok, err
}

// Diff compares outputs with the previous run without writing anything.
func (l *Ledger) Diff(network string, outputs []emitter.Output) (Changes, error) {
	changes := Changes{}
	last, err := l.LastNetwork()
	if err != nil {
		return changes, err
	}
	changes.NetworkSwitched = last != "" && last != network

	for _, o := range outputs {
		previous, ok, err := l.ContentHash(o.Category)
		if err != nil {
			return changes, err
		}
		if changes.NetworkSwitched || !ok || previous != o.ContentHashHex {
			changes.Changed = append(changes.Changed, o.Category)
		} else {
			changes.Unchanged = append(changes.Unchanged, o.Category)
		}
	}
	return changes, nil
}

// Record replaces the ledger contents with outputs.
func (l *Ledger) Record(network, version string, outputs []emitter.Output) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	type entry struct {
		key  []byte
		hash []byte
		line []byte
	}
	entries := make([]entry, 0, len(outputs))
	rawBytes, storedBytes := 0, 0
	for _, o := range outputs {
		hash, err := common.FromHex(o.ContentHashHex)
		if err != nil {
			return errors.Wrapf(err, "content hash of %v", o.Category)
		}
		line := []byte(o.String())
		stored, err := encodeLine(line)
		if err != nil {
			return errors.Wrapf(err, "compressing %v", o.Category)
		}
		rawBytes += len(line)
		storedBytes += len(stored)
		entries = append(entries, entry{key: ledgerKey(o.Category), hash: hash, line: stored})
	}
	zap.S().Debugf("Ledger: %d records, %d bytes compressed to %d bytes", len(entries), rawBytes, storedBytes)

	err := l.db.Update(func(tx *bolt.Tx) error {
		// reset on-disk records
		for _, name := range [][]byte{LedgerContentHashes, LedgerRecordLines} {
			if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
		}
		hashes, err := tx.CreateBucket(LedgerContentHashes)
		if err != nil {
			return err
		}
		lines, err := tx.CreateBucket(LedgerRecordLines)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := hashes.Put(e.key, e.hash); err != nil {
				return err
			}
			if err := lines.Put(e.key, e.line); err != nil {
				return err
			}
		}
		info := tx.Bucket(LedgerInfo)
		if err := info.Put(lastNetworkKey, []byte(network)); err != nil {
			return err
		}
		return info.Put(lastVersionKey, []byte(version))
	})
	if err != nil {
		return err
	}
	l.lookupCache.Purge()
	return nil
}

// encodeLine stores a flag byte, the raw length and the lz4 block, or the
// raw line when it does not compress.
func encodeLine(line []byte) ([]byte, error) {
	c := &lz4.CompressorHC{}
	compressionBuf := make([]byte, lz4.CompressBlockBound(len(line)))
	nCompressed, err := c.CompressBlock(line, compressionBuf)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	var rawLen [4]byte
	binary.LittleEndian.PutUint32(rawLen[:], uint32(len(line)))
	if nCompressed == 0 || nCompressed >= len(line) {
		out.WriteByte(lineRaw)
		out.Write(rawLen[:])
		out.Write(line)
		return out.Bytes(), nil
	}
	out.WriteByte(lineLZ4)
	out.Write(rawLen[:])
	out.Write(compressionBuf[:nCompressed])
	return out.Bytes(), nil
}

func decodeLine(stored []byte) ([]byte, error) {
	if len(stored) < 5 {
		return nil, errors.Errorf("stored line is %d bytes", len(stored))
	}
	rawLen := int(binary.LittleEndian.Uint32(stored[1:5]))
	body := stored[5:]
	switch stored[0] {
	case lineRaw:
		if len(body) != rawLen {
			return nil, errors.Errorf("raw line is %d bytes, header says %d", len(body), rawLen)
		}
		return append([]byte(nil), body...), nil
	case lineLZ4:
		decompressionBuf := make([]byte, rawLen)
		nDecompressed, err := lz4.UncompressBlock(body, decompressionBuf)
		if err != nil {
			return nil, err
		}
		if nDecompressed != rawLen {
			return nil, errors.Errorf("line decompressed to %d bytes, header says %d", nDecompressed, rawLen)
		}
		return decompressionBuf, nil
	}
	return nil, errors.Errorf("unknown line encoding %d", stored[0])
}
