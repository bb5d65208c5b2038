package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// keccak256("Transfer(address,address,uint256)")
var transferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// SumTransferLogs totals every ERC-20 Transfer in logs that was emitted by
// tokenContract with recipient as destination. The transaction sender is
// deliberately ignored: a payment routed through a proxy or intermediary
// contract still emits a Transfer with the final recipient as `to`, and that
// log is the payment proof. A zero total means no matching transfer exists.
func SumTransferLogs(logs []*types.Log, tokenContract, recipient common.Address) *big.Int {
	total := new(big.Int)

	for _, entry := range logs {
		if entry == nil || len(entry.Topics) < 3 {
			continue
		}
		if entry.Topics[0] != transferTopic {
			continue
		}
		if entry.Address != tokenContract {
			continue
		}
		to := common.BytesToAddress(entry.Topics[2].Bytes())
		if to != recipient {
			continue
		}
		total.Add(total, new(big.Int).SetBytes(entry.Data))
	}

	return total
}
