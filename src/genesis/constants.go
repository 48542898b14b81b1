package genesis

const (
	INIT_ACCOUNT_CHAIN_ACTION = "init-account-chain"
	CREATE_WALLET_ACTION      = "create_wallet"

	// ROOT_WALLET_ID is the id of the wallet cell created alongside the
	// account chain root.
	ROOT_WALLET_ID = "0xb7526803f67ebe70aba6"

	ACCOUNT_CELL_DATA_VERSION = 1
)
