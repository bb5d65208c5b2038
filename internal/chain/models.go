package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// FinalityConfirmations is the number of blocks mined on top of a
// transaction's block before it is treated as final.
const FinalityConfirmations = 3

// TxDetails is the composed read-only view of a mined transaction: the
// transaction itself, its receipt and the confirmation count relative to the
// chain head.
type TxDetails struct {
	Hash          string
	From          string
	To            string
	Value         *big.Int
	Input         string
	BlockNumber   uint64
	Confirmations uint64
	Succeeded     bool
	Confirmed     bool
	Logs          []*types.Log
}

// rpcTransaction mirrors the fields of eth_getTransactionByHash this client
// consumes; all values arrive hex-encoded per the EVM JSON-RPC convention.
type rpcTransaction struct {
	Hash        common.Hash     `json:"hash"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	Value       *hexutil.Big    `json:"value"`
	Input       hexutil.Bytes   `json:"input"`
	BlockNumber *hexutil.Big    `json:"blockNumber"`
}
