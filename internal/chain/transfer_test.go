package chain_test

import (
	"math/big"

	"landgrid/internal/chain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SumTransferLogs", func() {
	var (
		transferTopic common.Hash
		token         common.Address
		recipient     common.Address
		sender        common.Address
	)

	BeforeEach(func() {
		transferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		recipient = common.HexToAddress("0x2222222222222222222222222222222222222222")
		sender = common.HexToAddress("0x3333333333333333333333333333333333333333")
	})

	transferLog := func(contract common.Address, to common.Address, amount *big.Int) *types.Log {
		return &types.Log{
			Address: contract,
			Topics: []common.Hash{
				transferTopic,
				common.BytesToHash(sender.Bytes()),
				common.BytesToHash(to.Bytes()),
			},
			Data: common.LeftPadBytes(amount.Bytes(), 32),
		}
	}

	When("a single transfer targets the recipient", func() {
		It("should return the transferred amount", func() {
			logs := []*types.Log{transferLog(token, recipient, big.NewInt(1_000_000))}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Cmp(big.NewInt(1_000_000))).To(Equal(0))
		})
	})

	When("multiple transfers target the recipient", func() {
		It("should sum all of them", func() {
			logs := []*types.Log{
				transferLog(token, recipient, big.NewInt(1_000_000)),
				transferLog(token, recipient, big.NewInt(2_500_000)),
			}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Cmp(big.NewInt(3_500_000))).To(Equal(0))
		})
	})

	When("a transfer was emitted by another contract", func() {
		It("should skip it", func() {
			other := common.HexToAddress("0x4444444444444444444444444444444444444444")
			logs := []*types.Log{
				transferLog(other, recipient, big.NewInt(9_000_000)),
				transferLog(token, recipient, big.NewInt(1_000_000)),
			}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Cmp(big.NewInt(1_000_000))).To(Equal(0))
		})
	})

	When("a transfer targets another wallet", func() {
		It("should skip it", func() {
			logs := []*types.Log{
				transferLog(token, sender, big.NewInt(9_000_000)),
				transferLog(token, recipient, big.NewInt(1_000_000)),
			}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Cmp(big.NewInt(1_000_000))).To(Equal(0))
		})
	})

	When("a log is not a transfer event", func() {
		It("should skip logs with a different first topic", func() {
			logs := []*types.Log{
				{
					Address: token,
					Topics:  []common.Hash{common.HexToHash("0x01"), common.BytesToHash(sender.Bytes()), common.BytesToHash(recipient.Bytes())},
					Data:    common.LeftPadBytes(big.NewInt(9_000_000).Bytes(), 32),
				},
			}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Sign()).To(Equal(0))
		})

		It("should skip logs with too few topics", func() {
			logs := []*types.Log{
				{Address: token, Topics: []common.Hash{transferTopic}},
				nil,
			}
			total := chain.SumTransferLogs(logs, token, recipient)
			Expect(total.Sign()).To(Equal(0))
		})
	})

	When("there are no logs at all", func() {
		It("should return zero", func() {
			total := chain.SumTransferLogs(nil, token, recipient)
			Expect(total.Sign()).To(Equal(0))
		})
	})
})
