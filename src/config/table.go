package config

import (
	"bytes"
	"embed"
	"os"
	"path"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/entities"
	"github.com/overline-mining/dasgen/src/witness"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var builtinTables embed.FS

type Strategy string

const (
	STRATEGY_ENTITY          Strategy = "entity"
	STRATEGY_NULL_LIST       Strategy = "null_list"
	STRATEGY_ACCOUNT_BUCKETS Strategy = "account_buckets"
	STRATEGY_ACCOUNT_LIST    Strategy = "account_list"
	STRATEGY_HASH_LIST       Strategy = "hash_list"
	STRATEGY_BLOOM           Strategy = "bloom"
)

// Category is one line of the generator's work list.
//
// entity:          Entity is decoded into the typed cell registered for DataType
// null_list:       Source lines joined with 0x00, optionally sorted, with an
//                  optional leading Global byte
// account_buckets: Source names sharded over the preserved account range
//                  starting at DataType
// account_list:    Source names hashed to account ids, sorted
// hash_list:       Source lines are hex account hashes, truncated to ids
// bloom:           Source names hashed to account ids inserted into a filter
type Category struct {
	Name     string           `yaml:"name"`
	DataType witness.DataType `yaml:"data_type"`
	Strategy Strategy         `yaml:"strategy"`
	Source   string           `yaml:"source,omitempty"`
	Global   *uint8           `yaml:"global,omitempty"`
	Sort     bool             `yaml:"sort,omitempty"`
	Entity   *yaml.Node       `yaml:"entity,omitempty"`
}

type Table struct {
	Categories []Category `yaml:"categories"`
}

// strictCategory mirrors Category for the unknown key check. Entity values
// are left to entities.Decode, which knows their types.
type strictCategory struct {
	Name     string                 `yaml:"name"`
	DataType witness.DataType       `yaml:"data_type"`
	Strategy Strategy               `yaml:"strategy"`
	Source   string                 `yaml:"source,omitempty"`
	Global   *uint8                 `yaml:"global,omitempty"`
	Sort     bool                   `yaml:"sort,omitempty"`
	Entity   map[string]interface{} `yaml:"entity,omitempty"`
}

type strictTable struct {
	Categories []strictCategory `yaml:"categories"`
}

func ParseTable(raw []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&strictTable{}); err != nil {
		return nil, errors.Wrap(err, "category table")
	}

	t := &Table{}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, errors.Wrap(err, "category table")
	}
	return t, nil
}

func LoadTable(filename string) (*Table, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, &common.InputUnreadableError{Category: "category table", Path: filename, Err: err}
	}
	t, err := ParseTable(raw)
	return t, errors.Wrap(err, filename)
}

// DefaultTable returns the built-in category table of a network.
func DefaultTable(network string) (*Table, error) {
	raw, err := builtinTables.ReadFile(path.Join("tables", network+".yaml"))
	if err != nil {
		return nil, &common.InvalidParametersError{Reason: "no built-in category table for " + network}
	}
	return ParseTable(raw)
}

// Validate checks the table against the profile it will be generated with.
// Every data type, including each bucket of a sharded category, must be
// claimed once.
func (t *Table) Validate(p Params) error {
	if len(t.Categories) == 0 {
		return &common.InvalidParametersError{Reason: "category table is empty"}
	}
	names := make(map[string]bool)
	claimed := make(map[witness.DataType]string)
	claim := func(c Category, d witness.DataType) error {
		if other, ok := claimed[d]; ok {
			return &common.InvalidParametersError{Reason: c.Name + " and " + other + " both write " + d.String()}
		}
		claimed[d] = c.Name
		return nil
	}

	for _, c := range t.Categories {
		invalid := func(reason string) error {
			return &common.InvalidParametersError{Reason: "category " + c.Name + ": " + reason}
		}
		if c.Name == "" {
			return &common.InvalidParametersError{Reason: "category without a name"}
		}
		if names[c.Name] {
			return invalid("duplicate name")
		}
		names[c.Name] = true

		if c.Global != nil && c.Strategy != STRATEGY_NULL_LIST {
			return invalid("only null_list categories take a global byte")
		}
		if c.Strategy == STRATEGY_ENTITY {
			if c.Source != "" {
				return invalid("entity categories have no source file")
			}
			if !entities.HasEntity(c.DataType) {
				return invalid(c.DataType.String() + " has no entity encoding")
			}
			if c.Entity == nil {
				return invalid("missing entity values")
			}
		} else {
			if c.Source == "" {
				return invalid("missing source file")
			}
			if c.Entity != nil {
				return invalid("only entity categories take entity values")
			}
		}

		switch c.Strategy {
		case STRATEGY_ACCOUNT_BUCKETS:
			for i := 0; i < p.PreservedAccountCellCount; i++ {
				if err := claim(c, c.DataType+witness.DataType(i)); err != nil {
					return err
				}
			}
		case STRATEGY_ENTITY, STRATEGY_NULL_LIST, STRATEGY_ACCOUNT_LIST, STRATEGY_HASH_LIST, STRATEGY_BLOOM:
			if err := claim(c, c.DataType); err != nil {
				return err
			}
		default:
			return invalid("unknown strategy " + string(c.Strategy))
		}
	}
	return nil
}
