package witness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DataType tags every witness and config cell.
type DataType uint32

const (
	ActionData                   DataType = 0
	AccountCellData              DataType = 1
	ConfigCellAccount            DataType = 100
	ConfigCellApply              DataType = 101
	ConfigCellIncome             DataType = 103
	ConfigCellMain               DataType = 104
	ConfigCellPrice              DataType = 105
	ConfigCellProposal           DataType = 106
	ConfigCellProfitRate         DataType = 107
	ConfigCellRecordKeyNamespace DataType = 108
	ConfigCellRelease            DataType = 109
	ConfigCellUnAvailableAccount DataType = 110
	ConfigCellSecondaryMarket    DataType = 113
	ConfigCellReverseResolution  DataType = 114
	ConfigCellSubAccount         DataType = 115
	ConfigCellSubAccountBetaList DataType = 116
	ConfigCellSystemStatus       DataType = 118
	ConfigCellPreservedAccount00 DataType = 10000
	// filter over every preserved account, one cell
	ConfigCellPreservedAccountFilter DataType = 10100
	ConfigCellCharSetEmoji           DataType = 100000
	ConfigCellCharSetDigit           DataType = 100001
	ConfigCellCharSetEn              DataType = 100002
	ConfigCellCharSetZhHans          DataType = 100003
	ConfigCellCharSetZhHant          DataType = 100004
	ConfigCellCharSetJa              DataType = 100005
	ConfigCellCharSetKo              DataType = 100006
	ConfigCellCharSetRu              DataType = 100007
	ConfigCellCharSetTr              DataType = 100008
	ConfigCellCharSetTh              DataType = 100009
	ConfigCellCharSetVi              DataType = 100010
)

// PRESERVED_ACCOUNT_GROUPS is the widest preserved account range the
// DataType space reserves.
const PRESERVED_ACCOUNT_GROUPS = 100

var DATA_TYPE_NAMES = map[DataType]string{
	ActionData:                       "ActionData",
	AccountCellData:                  "AccountCellData",
	ConfigCellAccount:                "ConfigCellAccount",
	ConfigCellApply:                  "ConfigCellApply",
	ConfigCellIncome:                 "ConfigCellIncome",
	ConfigCellMain:                   "ConfigCellMain",
	ConfigCellPrice:                  "ConfigCellPrice",
	ConfigCellProposal:               "ConfigCellProposal",
	ConfigCellProfitRate:             "ConfigCellProfitRate",
	ConfigCellRecordKeyNamespace:     "ConfigCellRecordKeyNamespace",
	ConfigCellRelease:                "ConfigCellRelease",
	ConfigCellUnAvailableAccount:     "ConfigCellUnAvailableAccount",
	ConfigCellSecondaryMarket:        "ConfigCellSecondaryMarket",
	ConfigCellReverseResolution:      "ConfigCellReverseResolution",
	ConfigCellSubAccount:             "ConfigCellSubAccount",
	ConfigCellSubAccountBetaList:     "ConfigCellSubAccountBetaList",
	ConfigCellSystemStatus:           "ConfigCellSystemStatus",
	ConfigCellPreservedAccount00:     "ConfigCellPreservedAccount00",
	ConfigCellPreservedAccountFilter: "ConfigCellPreservedAccountFilter",
	ConfigCellCharSetEmoji:           "ConfigCellCharSetEmoji",
	ConfigCellCharSetDigit:           "ConfigCellCharSetDigit",
	ConfigCellCharSetEn:              "ConfigCellCharSetEn",
	ConfigCellCharSetZhHans:          "ConfigCellCharSetZhHans",
	ConfigCellCharSetZhHant:          "ConfigCellCharSetZhHant",
	ConfigCellCharSetJa:              "ConfigCellCharSetJa",
	ConfigCellCharSetKo:              "ConfigCellCharSetKo",
	ConfigCellCharSetRu:              "ConfigCellCharSetRu",
	ConfigCellCharSetTr:              "ConfigCellCharSetTr",
	ConfigCellCharSetTh:              "ConfigCellCharSetTh",
	ConfigCellCharSetVi:              "ConfigCellCharSetVi",
}

func (d DataType) String() string {
	if name, ok := DATA_TYPE_NAMES[d]; ok {
		return name
	}
	if d > ConfigCellPreservedAccount00 && d < ConfigCellPreservedAccount00+PRESERVED_ACCOUNT_GROUPS {
		return fmt.Sprintf("ConfigCellPreservedAccount%02d", uint32(d-ConfigCellPreservedAccount00))
	}
	return fmt.Sprintf("DataType(%d)", uint32(d))
}

// PreservedAccountGroupToDataType maps a bucket index to its cell.
func PreservedAccountGroupToDataType(index int) DataType {
	return ConfigCellPreservedAccount00 + DataType(index)
}

// ParseDataType accepts a name from DATA_TYPE_NAMES or a decimal number.
func ParseDataType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	for d, name := range DATA_TYPE_NAMES {
		if name == s {
			return d, nil
		}
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return DataType(n), nil
	}
	return 0, errors.Errorf("unknown data type %q", s)
}

// UnmarshalText lets tables name data types instead of numbering them.
func (d *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
