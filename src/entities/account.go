package entities

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/molecule"
)

// AccountCellData is the entity carried by every AccountCell. The account
// chars list is always empty for the root cell of the account chain.
type AccountCellData struct {
	ID           []byte
	Account      [][]byte
	OwnerLock    Script
	ManagerLock  Script
	RegisteredAt uint64
	Status       uint8
}

func (a AccountCellData) Encode() []byte {
	return molecule.Table(
		molecule.Struct(a.ID),
		molecule.Dynvec(a.Account...),
		a.OwnerLock.Encode(),
		a.ManagerLock.Encode(),
		molecule.Uint64(a.RegisteredAt),
		molecule.Uint8(a.Status),
	)
}

// RootAccountCell builds the first cell of the account chain: the all-zero
// id pointing at the all-0xff id with a never-expiring expiry.
func RootAccountCell(idLength int) AccountCellData {
	return AccountCellData{
		ID: make([]byte, idLength),
	}
}

// AccountCellContent lays out the cell data of an AccountCell:
// hash(entity) | id | next | expired_at | account.
func AccountCellContent(hash dashash.HashFunc, entity AccountCellData, next []byte, expiredAt uint64, account []byte) []byte {
	var buf bytes.Buffer
	sum := hash(entity.Encode())
	buf.Write(sum[:])
	buf.Write(entity.ID)
	buf.Write(next)
	var expiry [8]byte
	binary.LittleEndian.PutUint64(expiry[:], expiredAt)
	buf.Write(expiry[:])
	buf.Write(account)
	return buf.Bytes()
}

// RootAccountCellContent is AccountCellContent for the chain root.
func RootAccountCellContent(hash dashash.HashFunc, idLength int) ([]byte, AccountCellData) {
	entity := RootAccountCell(idLength)
	next := bytes.Repeat([]byte{0xff}, idLength)
	return AccountCellContent(hash, entity, next, math.MaxUint64, []byte{0}), entity
}
