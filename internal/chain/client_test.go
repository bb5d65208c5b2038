package chain_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"landgrid/internal/chain"
	"landgrid/internal/chain/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		fakeRPC *fake.RPCCaller
		client  *chain.Client
		ctx     context.Context
	)

	const txHash = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	minedTxJSON := fmt.Sprintf(`{
		"hash": %q,
		"from": "0x1111111111111111111111111111111111111111",
		"to": "0x2222222222222222222222222222222222222222",
		"value": "0x2710",
		"input": "0xabcdef",
		"blockNumber": "0x64"
	}`, txHash)

	BeforeEach(func() {
		fakeRPC = new(fake.RPCCaller)
		client = chain.NewClient(fakeRPC, 3, time.Millisecond)
		ctx = context.Background()
	})

	Describe("TransactionDetails", func() {
		var receipt *types.Receipt

		BeforeEach(func() {
			receipt = &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				BlockNumber: big.NewInt(100),
				Logs: []*types.Log{
					{Address: common.HexToAddress("0x1111111111111111111111111111111111111111")},
				},
			}

			fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, _ ...interface{}) error {
				switch method {
				case "eth_getTransactionByHash":
					return json.Unmarshal([]byte(minedTxJSON), result)
				case "eth_getTransactionReceipt":
					*(result.(**types.Receipt)) = receipt
					return nil
				case "eth_blockNumber":
					*(result.(*hexutil.Uint64)) = hexutil.Uint64(105)
					return nil
				}
				return fmt.Errorf("unexpected method %s", method)
			}
		})

		When("the transaction is mined and finalized", func() {
			It("should compose the full transaction view", func() {
				details, err := client.TransactionDetails(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Hash).To(Equal(txHash))
				Expect(details.From).To(Equal("0x1111111111111111111111111111111111111111"))
				Expect(details.To).To(Equal("0x2222222222222222222222222222222222222222"))
				Expect(details.Value.Cmp(big.NewInt(0x2710))).To(Equal(0))
				Expect(details.Input).To(Equal("0xabcdef"))
				Expect(details.BlockNumber).To(Equal(uint64(100)))
				Expect(details.Confirmations).To(Equal(uint64(5)))
				Expect(details.Succeeded).To(BeTrue())
				Expect(details.Confirmed).To(BeTrue())
				Expect(details.Logs).To(HaveLen(1))
			})
		})

		When("the transaction has too few confirmations", func() {
			It("should report it as not confirmed", func() {
				fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, _ ...interface{}) error {
					switch method {
					case "eth_getTransactionByHash":
						return json.Unmarshal([]byte(minedTxJSON), result)
					case "eth_getTransactionReceipt":
						*(result.(**types.Receipt)) = receipt
						return nil
					case "eth_blockNumber":
						*(result.(*hexutil.Uint64)) = hexutil.Uint64(102)
						return nil
					}
					return fmt.Errorf("unexpected method %s", method)
				}

				details, err := client.TransactionDetails(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Confirmations).To(Equal(uint64(2)))
				Expect(details.Confirmed).To(BeFalse())
			})
		})

		When("the receipt reports a revert", func() {
			It("should report the transaction as failed", func() {
				receipt.Status = types.ReceiptStatusFailed

				details, err := client.TransactionDetails(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Succeeded).To(BeFalse())
			})
		})

		When("the transaction is unknown to the node", func() {
			It("should return a not found error", func() {
				fakeRPC.CallContextStub = nil
				fakeRPC.CallContextReturns(nil)

				_, err := client.TransactionDetails(ctx, txHash)
				Expect(err).To(MatchError(chain.ErrTxNotFound))
			})
		})

		When("the transaction is still pending", func() {
			It("should return a not found error", func() {
				pending := fmt.Sprintf(`{"hash": %q, "from": "0x1111111111111111111111111111111111111111"}`, txHash)
				fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, _ ...interface{}) error {
					if method == "eth_getTransactionByHash" {
						return json.Unmarshal([]byte(pending), result)
					}
					return nil
				}

				_, err := client.TransactionDetails(ctx, txHash)
				Expect(err).To(MatchError(chain.ErrTxNotFound))
			})
		})

		When("the node cannot be reached", func() {
			It("should return a chain unavailable error", func() {
				fakeRPC.CallContextStub = nil
				fakeRPC.CallContextReturns(errors.New("connection refused"))

				_, err := client.TransactionDetails(ctx, txHash)
				Expect(err).To(MatchError(chain.ErrChainUnavailable))
			})
		})
	})

	Describe("WaitForReceipt", func() {
		When("the receipt appears after a few polls", func() {
			It("should return it and stop polling", func() {
				calls := 0
				fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, _ ...interface{}) error {
					calls++
					if calls >= 3 {
						*(result.(**types.Receipt)) = &types.Receipt{
							Status:      types.ReceiptStatusSuccessful,
							BlockNumber: big.NewInt(50),
						}
					}
					return nil
				}

				receipt, err := client.WaitForReceipt(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusSuccessful))
				Expect(fakeRPC.CallContextCallCount()).To(Equal(3))
			})
		})

		When("the attempt budget runs out", func() {
			It("should return a receipt timeout error", func() {
				fakeRPC.CallContextReturns(nil)

				_, err := client.WaitForReceipt(ctx, txHash)
				Expect(err).To(MatchError(chain.ErrReceiptTimeout))
				Expect(fakeRPC.CallContextCallCount()).To(Equal(3))
			})
		})

		When("the node fails mid-poll", func() {
			It("should abort instead of retrying", func() {
				fakeRPC.CallContextReturns(errors.New("connection refused"))

				_, err := client.WaitForReceipt(ctx, txHash)
				Expect(err).To(MatchError(chain.ErrChainUnavailable))
				Expect(fakeRPC.CallContextCallCount()).To(Equal(1))
			})
		})
	})

	Describe("TokenBalance", func() {
		const tokenContract = "0x5555555555555555555555555555555555555555"
		const wallet = "0x6666666666666666666666666666666666666666"

		When("the contract reports a balance", func() {
			It("should decode it and send the right calldata", func() {
				fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, args ...interface{}) error {
					Expect(method).To(Equal("eth_call"))
					*(result.(*hexutil.Bytes)) = common.LeftPadBytes(big.NewInt(5_000_000).Bytes(), 32)
					return nil
				}

				balance, err := client.TokenBalance(ctx, tokenContract, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Cmp(big.NewInt(5_000_000))).To(Equal(0))

				_, _, _, args := fakeRPC.CallContextArgsForCall(0)
				Expect(args).To(HaveLen(2))
				msg := args[0].(map[string]any)
				Expect(msg["to"]).To(Equal(tokenContract))
				Expect(msg["data"]).To(Equal("0x70a082310000000000000000000000006666666666666666666666666666666666666666"))
				Expect(args[1]).To(Equal("latest"))
			})
		})

		When("the contract returns an empty result", func() {
			It("should report a zero balance", func() {
				fakeRPC.CallContextReturns(nil)

				balance, err := client.TokenBalance(ctx, tokenContract, wallet)
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.Sign()).To(Equal(0))
			})
		})

		When("the node cannot be reached", func() {
			It("should return a chain unavailable error", func() {
				fakeRPC.CallContextReturns(errors.New("connection refused"))

				_, err := client.TokenBalance(ctx, tokenContract, wallet)
				Expect(err).To(MatchError(chain.ErrChainUnavailable))
			})
		})
	})
})
