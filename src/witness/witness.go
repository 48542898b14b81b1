package witness

import (
	"github.com/overline-mining/dasgen/src/molecule"
)

// WITNESS_MAGIC opens every witness this system reads.
var WITNESS_MAGIC = []byte("das")

// WrapRaw builds "das" ++ u32le(dataType) ++ body.
func WrapRaw(dataType DataType, body []byte) []byte {
	out := make([]byte, 0, len(WITNESS_MAGIC)+molecule.NUMBER_SIZE+len(body))
	out = append(out, WITNESS_MAGIC...)
	out = append(out, molecule.Uint32(uint32(dataType))...)
	return append(out, body...)
}

// WrapAction builds the action witness telling the contracts what a
// transaction does; params may be nil.
func WrapAction(action string, params []byte) []byte {
	return WrapRaw(ActionData, ActionDataEntity(action, params))
}

// ActionDataEntity is table ActionData { action: Bytes, params: Bytes }.
func ActionDataEntity(action string, params []byte) []byte {
	return molecule.Table(molecule.Bytes([]byte(action)), molecule.Bytes(params))
}

type DataEntity struct {
	Version uint32
	Index   uint32
	Entity  []byte
}

// Encode is table DataEntity { version: Uint32, index: Uint32, entity: Bytes }.
func (d *DataEntity) Encode() []byte {
	return molecule.Table(molecule.Uint32(d.Version), molecule.Uint32(d.Index), molecule.Bytes(d.Entity))
}

func (d *DataEntity) encodeOpt() []byte {
	if d == nil {
		return molecule.Option(nil)
	}
	return d.Encode()
}

// WrapData builds the witness carrying old, new and dep versions of a cell's
// entity; absent versions are nil.
func WrapData(dataType DataType, newEntity, oldEntity, depEntity *DataEntity) []byte {
	body := molecule.Table(oldEntity.encodeOpt(), newEntity.encodeOpt(), depEntity.encodeOpt())
	return WrapRaw(dataType, body)
}
