package entities

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"

	"github.com/overline-mining/dasgen/src/witness"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var constructors = map[witness.DataType]func() Entity{
	witness.ConfigCellAccount:           func() Entity { return &ConfigCellAccount{} },
	witness.ConfigCellApply:             func() Entity { return &ConfigCellApply{} },
	witness.ConfigCellIncome:            func() Entity { return &ConfigCellIncome{} },
	witness.ConfigCellMain:              func() Entity { return &ConfigCellMain{} },
	witness.ConfigCellPrice:             func() Entity { return &ConfigCellPrice{} },
	witness.ConfigCellProposal:          func() Entity { return &ConfigCellProposal{} },
	witness.ConfigCellProfitRate:        func() Entity { return &ConfigCellProfitRate{} },
	witness.ConfigCellRelease:           func() Entity { return &ConfigCellRelease{} },
	witness.ConfigCellSecondaryMarket:   func() Entity { return &ConfigCellSecondaryMarket{} },
	witness.ConfigCellReverseResolution: func() Entity { return &ConfigCellReverseResolution{} },
	witness.ConfigCellSubAccount:        func() Entity { return &ConfigCellSubAccount{} },
	witness.ConfigCellSystemStatus:      func() Entity { return &ConfigCellSystemStatus{} },
}

// HasEntity reports whether dataType is backed by a typed entity.
func HasEntity(dataType witness.DataType) bool {
	_, ok := constructors[dataType]
	return ok
}

// Decode reads node into the entity registered for dataType. Every field
// must be given exactly by name: unknown and missing keys are both errors.
func Decode(dataType witness.DataType, node *yaml.Node) (Entity, error) {
	newEntity, ok := constructors[dataType]
	if !ok {
		return nil, errors.Errorf("%s has no entity encoding", dataType)
	}
	if node == nil {
		return nil, errors.Errorf("%s is missing its entity values", dataType)
	}
	if err := requireFields(node, reflect.TypeOf(newEntity()).Elem(), ""); err != nil {
		return nil, errors.Wrapf(err, "%s", dataType)
	}

	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", dataType)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	e := newEntity()
	if err := dec.Decode(e); err != nil {
		return nil, errors.Wrapf(err, "%s", dataType)
	}
	return e, nil
}

// requireFields checks that node sets every yaml tagged field of t, walking
// into nested structs and lists of structs.
func requireFields(node *yaml.Node, t reflect.Type, at string) error {
	for node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return requireFields(node.Alias, t, at)
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind != yaml.MappingNode {
			return errors.Errorf("line %d: %s must be a mapping", node.Line, describe(at))
		}
		values := make(map[string]*yaml.Node, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			values[node.Content[i].Value] = node.Content[i+1]
		}
		for i := 0; i < t.NumField(); i++ {
			name := strings.Split(t.Field(i).Tag.Get("yaml"), ",")[0]
			if name == "" || name == "-" {
				continue
			}
			value, ok := values[name]
			if !ok || value.ShortTag() == "!!null" {
				return errors.Errorf("line %d: %s is missing field %s", node.Line, describe(at), name)
			}
			if err := requireFields(value, t.Field(i).Type, join(at, name)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		if t.Elem().Kind() != reflect.Struct || node.Kind != yaml.SequenceNode {
			return nil
		}
		for i, item := range node.Content {
			if err := requireFields(item, t.Elem(), join(at, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(at, name string) string {
	if at == "" {
		return name
	}
	return at + "." + name
}

func describe(at string) string {
	if at == "" {
		return "entity"
	}
	return at
}
