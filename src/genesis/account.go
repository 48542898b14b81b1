package genesis

import (
	"fmt"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/config"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/entities"
	"github.com/overline-mining/dasgen/src/witness"
	"go.uber.org/zap"
)

// BuildRootAccountCell renders the first AccountCell of the account chain:
// an empty type field, the cell data, the action and the data witness.
func BuildRootAccountCell(p config.Params, hash dashash.HashFunc) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	cellData, entity := entities.RootAccountCellContent(hash, p.AccountIDLength)
	actionWitness := witness.WrapAction(INIT_ACCOUNT_CHAIN_ACTION, nil)
	cellWitness := witness.WrapData(witness.AccountCellData, &witness.DataEntity{
		Version: ACCOUNT_CELL_DATA_VERSION,
		Index:   0,
		Entity:  entity.Encode(),
	}, nil, nil)

	zap.S().Debugf("Root AccountCell: data %d bytes, witness %d bytes", len(cellData), len(cellWitness))
	return fmt.Sprintf("%s %s %s %s",
		common.Hex(nil),
		common.Hex(cellData),
		common.Hex(actionWitness),
		common.Hex(cellWitness),
	), nil
}

// BuildRootWalletCell renders the wallet id and the action creating it.
func BuildRootWalletCell() string {
	return fmt.Sprintf("%s %s", ROOT_WALLET_ID, common.Hex(witness.WrapAction(CREATE_WALLET_ACTION, nil)))
}
