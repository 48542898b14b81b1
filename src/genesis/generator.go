package genesis

import (
	"sort"

	"github.com/overline-mining/dasgen/src/bloom"
	"github.com/overline-mining/dasgen/src/codec"
	"github.com/overline-mining/dasgen/src/config"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/emitter"
	"github.com/overline-mining/dasgen/src/entities"
	"github.com/overline-mining/dasgen/src/sharding"
	"github.com/overline-mining/dasgen/src/validation"
	"github.com/overline-mining/dasgen/src/witness"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Generator struct {
	Params  config.Params
	Table   *config.Table
	DataDir string
	Hash    dashash.HashFunc

	sources *sourceCache
	emitter *emitter.Emitter
}

func NewGenerator(p config.Params, table *config.Table, dataDir string) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := table.Validate(p); err != nil {
		return nil, err
	}
	return &Generator{
		Params:  p,
		Table:   table,
		DataDir: dataDir,
		Hash:    dashash.Blake2b256,
	}, nil
}

// Run encodes every category of the table in order. Either every record
// is returned or none is.
func (g *Generator) Run() ([]emitter.Output, error) {
	g.sources = newSourceCache(g.DataDir)
	g.emitter = emitter.New(g.Hash, g.Params.WitnessSizeLimit, emitter.CONFIG_ACTION)

	outputs := make([]emitter.Output, 0, len(g.Table.Categories))
	totalBytes := 0
	for _, c := range g.Table.Categories {
		records, err := g.EncodeCategory(c)
		if err != nil {
			return nil, errors.Wrapf(err, "category %s", c.Name)
		}
		for _, r := range records {
			out, err := g.emitter.Emit(witness.DataType(r.Category), r.Payload)
			if err != nil {
				return nil, errors.Wrapf(err, "category %s", c.Name)
			}
			outputs = append(outputs, out)
			totalBytes += len(r.Payload)
		}
		zap.S().Debugf("%v (%v): %d records", c.Name, c.Strategy, len(records))
	}
	zap.S().Infof("Generated %d %v config cells from %d categories, %d payload bytes",
		len(outputs), g.Params.Network, len(g.Table.Categories), totalBytes)
	return outputs, nil
}

// EncodeCategory produces the payloads of one category without emitting them.
func (g *Generator) EncodeCategory(c config.Category) ([]codec.Record, error) {
	if g.sources == nil {
		g.sources = newSourceCache(g.DataDir)
	}
	switch c.Strategy {
	case config.STRATEGY_ENTITY:
		return g.encodeEntity(c)
	case config.STRATEGY_NULL_LIST:
		return g.encodeNullList(c)
	case config.STRATEGY_ACCOUNT_BUCKETS:
		return g.encodeAccountBuckets(c)
	case config.STRATEGY_ACCOUNT_LIST:
		return g.encodeAccountList(c)
	case config.STRATEGY_HASH_LIST:
		return g.encodeHashList(c)
	case config.STRATEGY_BLOOM:
		return g.encodeBloom(c)
	}
	return nil, errors.Errorf("unknown strategy %v", c.Strategy)
}

func single(c config.Category, payload []byte) []codec.Record {
	return []codec.Record{{Category: uint32(c.DataType), Payload: payload}}
}

func (g *Generator) encodeEntity(c config.Category) ([]codec.Record, error) {
	e, err := entities.Decode(c.DataType, c.Entity)
	if err != nil {
		return nil, err
	}
	raw := e.Encode()
	if ok, err := validation.IsValidEntity(c.DataType.String(), raw); !ok {
		return nil, err
	}
	return single(c, raw), nil
}

func (g *Generator) encodeNullList(c config.Category) ([]codec.Record, error) {
	lines, err := g.sources.get(c.Name, c.Source)
	if err != nil {
		return nil, err
	}
	items := lines
	if c.Sort {
		items = append([]string(nil), lines...)
		sort.Strings(items)
	}
	body, err := codec.EncodeNullSeparated(c.DataType.String(), items, c.Global)
	if err != nil {
		return nil, err
	}
	payload, err := codec.EncodeLengthPrefixed(c.DataType.String(), body, g.Params.WitnessSizeLimit)
	if err != nil {
		return nil, err
	}
	zap.S().Debugf("%v: %d items", c.DataType, len(items))
	return single(c, payload), nil
}

func (g *Generator) accountIDs(c config.Category) ([][]byte, error) {
	names, err := g.sources.get(c.Name, c.Source)
	if err != nil {
		return nil, err
	}
	ids := make([][]byte, 0, len(names))
	for _, name := range names {
		ids = append(ids, dashash.AccountID(g.Hash, name, g.Params.AccountIDLength))
	}
	return ids, nil
}

func (g *Generator) encodeIDSet(c config.Category, ids [][]byte) ([]codec.Record, error) {
	dashash.SortIDs(ids)
	ids = dashash.DedupSorted(ids)
	body, err := codec.ConcatFixed(ids, g.Params.AccountIDLength)
	if err != nil {
		return nil, err
	}
	payload, err := codec.EncodeLengthPrefixed(c.DataType.String(), body, g.Params.WitnessSizeLimit)
	if err != nil {
		return nil, err
	}
	if _, err := validation.IsValidIDSet(c.DataType.String(), payload, g.Params.AccountIDLength); err != nil {
		return nil, err
	}
	zap.S().Debugf("%v: %d ids", c.DataType, len(ids))
	return single(c, payload), nil
}

func (g *Generator) encodeAccountList(c config.Category) ([]codec.Record, error) {
	ids, err := g.accountIDs(c)
	if err != nil {
		return nil, err
	}
	return g.encodeIDSet(c, ids)
}

func (g *Generator) encodeHashList(c config.Category) ([]codec.Record, error) {
	lines, err := g.sources.get(c.Name, c.Source)
	if err != nil {
		return nil, err
	}
	ids := make([][]byte, 0, len(lines))
	for _, line := range lines {
		id, err := validation.ParseAccountHash(line, g.Params.AccountIDLength)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return g.encodeIDSet(c, ids)
}

func (g *Generator) shardingParams(c config.Category) sharding.Params {
	return sharding.Params{
		Category:         c.DataType.String(),
		BaseCategory:     uint32(c.DataType),
		BucketCount:      g.Params.PreservedAccountCellCount,
		Capacity:         g.Params.PreservedAccountLimitPerCell,
		AccountIDLength:  g.Params.AccountIDLength,
		WitnessSizeLimit: g.Params.WitnessSizeLimit,
	}
}

func (g *Generator) encodeAccountBuckets(c config.Category) ([]codec.Record, error) {
	ids, err := g.accountIDs(c)
	if err != nil {
		return nil, err
	}
	records, err := sharding.ShardIDs(ids, g.shardingParams(c))
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if _, err := validation.IsValidIDSet(witness.DataType(r.Category).String(), r.Payload, g.Params.AccountIDLength); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (g *Generator) encodeBloom(c config.Category) ([]codec.Record, error) {
	ids, err := g.accountIDs(c)
	if err != nil {
		return nil, err
	}
	f, err := bloom.New(g.Params.BloomBits, g.Params.BloomHashRounds)
	if err != nil {
		return nil, err
	}
	dashash.SortIDs(ids)
	ids = dashash.DedupSorted(ids)
	for _, id := range ids {
		f.Insert(id)
	}
	payload, err := codec.EncodeLengthPrefixed(c.DataType.String(), f.Bytes(), g.Params.WitnessSizeLimit)
	if err != nil {
		return nil, err
	}
	zap.S().Infof("%v: %d ids in %d bits with %d rounds, false positive rate %.4f",
		c.DataType, f.Inserted(), f.SizeInBits(), f.HashRounds(), f.FalsePositiveRate(f.Inserted()))
	return single(c, payload), nil
}
