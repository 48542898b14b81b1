package entities

import (
	"github.com/overline-mining/dasgen/src/molecule"
)

// Field order of every table below is the order the contracts read them in.

type ConfigCellAccount struct {
	MaxLength               uint32 `yaml:"max_length"`
	BasicCapacity           uint64 `yaml:"basic_capacity"`
	PreparedFeeCapacity     uint64 `yaml:"prepared_fee_capacity"`
	ExpirationGracePeriod   uint32 `yaml:"expiration_grace_period"`
	RecordMinTTL            uint32 `yaml:"record_min_ttl"`
	RecordSizeLimit         uint32 `yaml:"record_size_limit"`
	TransferAccountFee      uint64 `yaml:"transfer_account_fee"`
	EditManagerFee          uint64 `yaml:"edit_manager_fee"`
	EditRecordsFee          uint64 `yaml:"edit_records_fee"`
	CommonFee               uint64 `yaml:"common_fee"`
	TransferAccountThrottle uint32 `yaml:"transfer_account_throttle"`
	EditManagerThrottle     uint32 `yaml:"edit_manager_throttle"`
	EditRecordsThrottle     uint32 `yaml:"edit_records_throttle"`
	CommonThrottle          uint32 `yaml:"common_throttle"`
}

func (c ConfigCellAccount) Encode() []byte {
	return molecule.Table(
		molecule.Uint32(c.MaxLength),
		molecule.Uint64(c.BasicCapacity),
		molecule.Uint64(c.PreparedFeeCapacity),
		molecule.Uint32(c.ExpirationGracePeriod),
		molecule.Uint32(c.RecordMinTTL),
		molecule.Uint32(c.RecordSizeLimit),
		molecule.Uint64(c.TransferAccountFee),
		molecule.Uint64(c.EditManagerFee),
		molecule.Uint64(c.EditRecordsFee),
		molecule.Uint64(c.CommonFee),
		molecule.Uint32(c.TransferAccountThrottle),
		molecule.Uint32(c.EditManagerThrottle),
		molecule.Uint32(c.EditRecordsThrottle),
		molecule.Uint32(c.CommonThrottle),
	)
}

type ConfigCellApply struct {
	ApplyMinWaitingBlockNumber uint32 `yaml:"apply_min_waiting_block_number"`
	ApplyMaxWaitingBlockNumber uint32 `yaml:"apply_max_waiting_block_number"`
}

func (c ConfigCellApply) Encode() []byte {
	return molecule.Table(
		molecule.Uint32(c.ApplyMinWaitingBlockNumber),
		molecule.Uint32(c.ApplyMaxWaitingBlockNumber),
	)
}

type ConfigCellIncome struct {
	BasicCapacity       uint64 `yaml:"basic_capacity"`
	MaxRecords          uint32 `yaml:"max_records"`
	MinTransferCapacity uint64 `yaml:"min_transfer_capacity"`
}

func (c ConfigCellIncome) Encode() []byte {
	return molecule.Table(
		molecule.Uint64(c.BasicCapacity),
		molecule.Uint32(c.MaxRecords),
		molecule.Uint64(c.MinTransferCapacity),
	)
}

type TypeIdTable struct {
	AccountCell        Hash `yaml:"account_cell"`
	ApplyRegisterCell  Hash `yaml:"apply_register_cell"`
	BalanceCell        Hash `yaml:"balance_cell"`
	IncomeCell         Hash `yaml:"income_cell"`
	PreAccountCell     Hash `yaml:"pre_account_cell"`
	ProposalCell       Hash `yaml:"proposal_cell"`
	AccountSaleCell    Hash `yaml:"account_sale_cell"`
	AccountAuctionCell Hash `yaml:"account_auction_cell"`
	OfferCell          Hash `yaml:"offer_cell"`
	ReverseRecordCell  Hash `yaml:"reverse_record_cell"`
	SubAccountCell     Hash `yaml:"sub_account_cell"`
	Eip712Lib          Hash `yaml:"eip712_lib"`
}

func (t TypeIdTable) Encode() []byte {
	return molecule.Table(
		t.AccountCell.Encode(),
		t.ApplyRegisterCell.Encode(),
		t.BalanceCell.Encode(),
		t.IncomeCell.Encode(),
		t.PreAccountCell.Encode(),
		t.ProposalCell.Encode(),
		t.AccountSaleCell.Encode(),
		t.AccountAuctionCell.Encode(),
		t.OfferCell.Encode(),
		t.ReverseRecordCell.Encode(),
		t.SubAccountCell.Encode(),
		t.Eip712Lib.Encode(),
	)
}

type DasLockOutPointTable struct {
	CkbSignall      OutPoint `yaml:"ckb_signall"`
	CkbMultisign    OutPoint `yaml:"ckb_multisign"`
	CkbAnyoneCanPay OutPoint `yaml:"ckb_anyone_can_pay"`
	Eth             OutPoint `yaml:"eth"`
	Tron            OutPoint `yaml:"tron"`
	Ed25519         OutPoint `yaml:"ed25519"`
}

func (t DasLockOutPointTable) Encode() []byte {
	return molecule.Table(
		t.CkbSignall.Encode(),
		t.CkbMultisign.Encode(),
		t.CkbAnyoneCanPay.Encode(),
		t.Eth.Encode(),
		t.Tron.Encode(),
		t.Ed25519.Encode(),
	)
}

const (
	SYSTEM_STATUS_OFF uint8 = 0
	SYSTEM_STATUS_ON  uint8 = 1
)

type ConfigCellMain struct {
	Status               uint8                `yaml:"status"`
	TypeIdTable          TypeIdTable          `yaml:"type_id_table"`
	DasLockOutPointTable DasLockOutPointTable `yaml:"das_lock_out_point_table"`
}

func (c ConfigCellMain) Encode() []byte {
	return molecule.Table(
		molecule.Uint8(c.Status),
		c.TypeIdTable.Encode(),
		c.DasLockOutPointTable.Encode(),
	)
}

type DiscountConfig struct {
	InvitedDiscount uint32 `yaml:"invited_discount"`
}

func (d DiscountConfig) Encode() []byte {
	return molecule.Table(molecule.Uint32(d.InvitedDiscount))
}

type PriceConfig struct {
	Length uint8  `yaml:"length"`
	New    uint64 `yaml:"new"`
	Renew  uint64 `yaml:"renew"`
}

func (p PriceConfig) Encode() []byte {
	return molecule.Table(molecule.Uint8(p.Length), molecule.Uint64(p.New), molecule.Uint64(p.Renew))
}

type ConfigCellPrice struct {
	Discount DiscountConfig `yaml:"discount"`
	Prices   []PriceConfig  `yaml:"prices"`
}

func (c ConfigCellPrice) Encode() []byte {
	prices := make([][]byte, 0, len(c.Prices))
	for _, p := range c.Prices {
		prices = append(prices, p.Encode())
	}
	return molecule.Table(c.Discount.Encode(), molecule.Dynvec(prices...))
}

type ConfigCellProposal struct {
	ProposalMinConfirmInterval   uint8  `yaml:"proposal_min_confirm_interval"`
	ProposalMinExtendInterval    uint8  `yaml:"proposal_min_extend_interval"`
	ProposalMinRecycleInterval   uint8  `yaml:"proposal_min_recycle_interval"`
	ProposalMaxAccountAffect     uint32 `yaml:"proposal_max_account_affect"`
	ProposalMaxPreAccountContain uint32 `yaml:"proposal_max_pre_account_contain"`
}

func (c ConfigCellProposal) Encode() []byte {
	return molecule.Table(
		molecule.Uint8(c.ProposalMinConfirmInterval),
		molecule.Uint8(c.ProposalMinExtendInterval),
		molecule.Uint8(c.ProposalMinRecycleInterval),
		molecule.Uint32(c.ProposalMaxAccountAffect),
		molecule.Uint32(c.ProposalMaxPreAccountContain),
	)
}

// ConfigCellProfitRate values are in units of 1/10000.
type ConfigCellProfitRate struct {
	Channel              uint32 `yaml:"channel"`
	Inviter              uint32 `yaml:"inviter"`
	ProposalCreate       uint32 `yaml:"proposal_create"`
	ProposalConfirm      uint32 `yaml:"proposal_confirm"`
	IncomeConsolidate    uint32 `yaml:"income_consolidate"`
	SaleBuyerInviter     uint32 `yaml:"sale_buyer_inviter"`
	SaleBuyerChannel     uint32 `yaml:"sale_buyer_channel"`
	SaleDas              uint32 `yaml:"sale_das"`
	AuctionBidderInviter uint32 `yaml:"auction_bidder_inviter"`
	AuctionBidderChannel uint32 `yaml:"auction_bidder_channel"`
	AuctionDas           uint32 `yaml:"auction_das"`
	AuctionPrevBidder    uint32 `yaml:"auction_prev_bidder"`
}

func (c ConfigCellProfitRate) Encode() []byte {
	return molecule.Table(
		molecule.Uint32(c.Channel),
		molecule.Uint32(c.Inviter),
		molecule.Uint32(c.ProposalCreate),
		molecule.Uint32(c.ProposalConfirm),
		molecule.Uint32(c.IncomeConsolidate),
		molecule.Uint32(c.SaleBuyerInviter),
		molecule.Uint32(c.SaleBuyerChannel),
		molecule.Uint32(c.SaleDas),
		molecule.Uint32(c.AuctionBidderInviter),
		molecule.Uint32(c.AuctionBidderChannel),
		molecule.Uint32(c.AuctionDas),
		molecule.Uint32(c.AuctionPrevBidder),
	)
}

// ConfigCellRelease: lucky_number is the release ratio scaled to u32,
// 2576980377 releases 60%.
type ConfigCellRelease struct {
	LuckyNumber uint32 `yaml:"lucky_number"`
}

func (c ConfigCellRelease) Encode() []byte {
	return molecule.Table(molecule.Uint32(c.LuckyNumber))
}

type ConfigCellSecondaryMarket struct {
	CommonFee                       uint64 `yaml:"common_fee"`
	SaleMinPrice                    uint64 `yaml:"sale_min_price"`
	SaleExpirationLimit             uint32 `yaml:"sale_expiration_limit"`
	SaleDescriptionBytesLimit       uint32 `yaml:"sale_description_bytes_limit"`
	SaleCellBasicCapacity           uint64 `yaml:"sale_cell_basic_capacity"`
	SaleCellPreparedFeeCapacity     uint64 `yaml:"sale_cell_prepared_fee_capacity"`
	OfferCellBasicCapacity          uint64 `yaml:"offer_cell_basic_capacity"`
	OfferCellPreparedFeeCapacity    uint64 `yaml:"offer_cell_prepared_fee_capacity"`
	OfferMinPrice                   uint64 `yaml:"offer_min_price"`
	OfferMessageBytesLimit          uint32 `yaml:"offer_message_bytes_limit"`
	AuctionMaxExtendableDuration    uint32 `yaml:"auction_max_extendable_duration"`
	AuctionDurationIncrementEachBid uint32 `yaml:"auction_duration_increment_each_bid"`
	AuctionMinOpeningPrice          uint64 `yaml:"auction_min_opening_price"`
	AuctionMinIncrementRateEachBid  uint32 `yaml:"auction_min_increment_rate_each_bid"`
	AuctionDescriptionBytesLimit    uint32 `yaml:"auction_description_bytes_limit"`
	AuctionCellBasicCapacity        uint64 `yaml:"auction_cell_basic_capacity"`
	AuctionCellPreparedFeeCapacity  uint64 `yaml:"auction_cell_prepared_fee_capacity"`
}

func (c ConfigCellSecondaryMarket) Encode() []byte {
	return molecule.Table(
		molecule.Uint64(c.CommonFee),
		molecule.Uint64(c.SaleMinPrice),
		molecule.Uint32(c.SaleExpirationLimit),
		molecule.Uint32(c.SaleDescriptionBytesLimit),
		molecule.Uint64(c.SaleCellBasicCapacity),
		molecule.Uint64(c.SaleCellPreparedFeeCapacity),
		molecule.Uint64(c.OfferCellBasicCapacity),
		molecule.Uint64(c.OfferCellPreparedFeeCapacity),
		molecule.Uint64(c.OfferMinPrice),
		molecule.Uint32(c.OfferMessageBytesLimit),
		molecule.Uint32(c.AuctionMaxExtendableDuration),
		molecule.Uint32(c.AuctionDurationIncrementEachBid),
		molecule.Uint64(c.AuctionMinOpeningPrice),
		molecule.Uint32(c.AuctionMinIncrementRateEachBid),
		molecule.Uint32(c.AuctionDescriptionBytesLimit),
		molecule.Uint64(c.AuctionCellBasicCapacity),
		molecule.Uint64(c.AuctionCellPreparedFeeCapacity),
	)
}

type ConfigCellReverseResolution struct {
	RecordBasicCapacity       uint64 `yaml:"record_basic_capacity"`
	RecordPreparedFeeCapacity uint64 `yaml:"record_prepared_fee_capacity"`
	CommonFee                 uint64 `yaml:"common_fee"`
}

func (c ConfigCellReverseResolution) Encode() []byte {
	return molecule.Table(
		molecule.Uint64(c.RecordBasicCapacity),
		molecule.Uint64(c.RecordPreparedFeeCapacity),
		molecule.Uint64(c.CommonFee),
	)
}

type ConfigCellSubAccount struct {
	BasicCapacity                           uint64 `yaml:"basic_capacity"`
	PreparedFeeCapacity                     uint64 `yaml:"prepared_fee_capacity"`
	NewSubAccountPrice                      uint64 `yaml:"new_sub_account_price"`
	RenewSubAccountPrice                    uint64 `yaml:"renew_sub_account_price"`
	NewSubAccountCustomPriceDasProfitRate   uint32 `yaml:"new_sub_account_custom_price_das_profit_rate"`
	RenewSubAccountCustomPriceDasProfitRate uint32 `yaml:"renew_sub_account_custom_price_das_profit_rate"`
	CommonFee                               uint64 `yaml:"common_fee"`
	CreateFee                               uint64 `yaml:"create_fee"`
	EditFee                                 uint64 `yaml:"edit_fee"`
	RenewFee                                uint64 `yaml:"renew_fee"`
	RecycleFee                              uint64 `yaml:"recycle_fee"`
}

func (c ConfigCellSubAccount) Encode() []byte {
	return molecule.Table(
		molecule.Uint64(c.BasicCapacity),
		molecule.Uint64(c.PreparedFeeCapacity),
		molecule.Uint64(c.NewSubAccountPrice),
		molecule.Uint64(c.RenewSubAccountPrice),
		molecule.Uint32(c.NewSubAccountCustomPriceDasProfitRate),
		molecule.Uint32(c.RenewSubAccountCustomPriceDasProfitRate),
		molecule.Uint64(c.CommonFee),
		molecule.Uint64(c.CreateFee),
		molecule.Uint64(c.EditFee),
		molecule.Uint64(c.RenewFee),
		molecule.Uint64(c.RecycleFee),
	)
}

// ContractStatus is table ContractStatus { status: byte, version: Bytes }.
type ContractStatus struct {
	Status  bool   `yaml:"status"`
	Version string `yaml:"version"`
}

func (c ContractStatus) Encode() []byte {
	return molecule.Table(molecule.Bool(c.Status), molecule.Bytes([]byte(c.Version)))
}

type ConfigCellSystemStatus struct {
	ApplyRegisterCellType ContractStatus `yaml:"apply_register_cell_type"`
	PreAccountCellType    ContractStatus `yaml:"pre_account_cell_type"`
	ProposalCellType      ContractStatus `yaml:"proposal_cell_type"`
	ConfigCellType        ContractStatus `yaml:"config_cell_type"`
	AccountCellType       ContractStatus `yaml:"account_cell_type"`
	AccountSaleCellType   ContractStatus `yaml:"account_sale_cell_type"`
	SubAccountCellType    ContractStatus `yaml:"sub_account_cell_type"`
	OfferCellType         ContractStatus `yaml:"offer_cell_type"`
	BalanceCellType       ContractStatus `yaml:"balance_cell_type"`
	IncomeCellType        ContractStatus `yaml:"income_cell_type"`
	ReverseRecordCellType ContractStatus `yaml:"reverse_record_cell_type"`
	Eip712Lib             ContractStatus `yaml:"eip712_lib"`
}

func (c ConfigCellSystemStatus) Encode() []byte {
	return molecule.Table(
		c.ApplyRegisterCellType.Encode(),
		c.PreAccountCellType.Encode(),
		c.ProposalCellType.Encode(),
		c.ConfigCellType.Encode(),
		c.AccountCellType.Encode(),
		c.AccountSaleCellType.Encode(),
		c.SubAccountCellType.Encode(),
		c.OfferCellType.Encode(),
		c.BalanceCellType.Encode(),
		c.IncomeCellType.Encode(),
		c.ReverseRecordCellType.Encode(),
		c.Eip712Lib.Encode(),
	)
}
