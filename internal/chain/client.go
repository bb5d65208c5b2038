package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrChainUnavailable error = errors.New("chain node unavailable")
var ErrTxNotFound error = errors.New("transaction not found on chain")
var ErrReceiptTimeout error = errors.New("transaction receipt not available within budget")

// balanceOf(address) selector.
const balanceOfSelector = "0x70a08231"

const defaultCallTimeout = 10 * time.Second

// Client is a thin typed wrapper over a single EVM node's JSON-RPC surface.
// Transport faults surface as ErrChainUnavailable and are retryable; an
// absent result means the transaction is simply not mined yet and surfaces
// as ErrTxNotFound.
type Client struct {
	rpc          RPCCaller
	callTimeout  time.Duration
	waitAttempts int
	waitInterval time.Duration
}

func NewClient(rpcCaller RPCCaller, waitAttempts int, waitInterval time.Duration) *Client {
	return &Client{
		rpc:          rpcCaller,
		callTimeout:  defaultCallTimeout,
		waitAttempts: waitAttempts,
		waitInterval: waitInterval,
	}
}

// TransactionDetails composes transaction, receipt and chain head into one
// view. Confirmations count blocks mined after the transaction's block.
func (c *Client) TransactionDetails(ctx context.Context, txHash string) (TxDetails, error) {
	tx, err := c.transactionByHash(ctx, txHash)
	if err != nil {
		return TxDetails{}, err
	}

	receipt, err := c.transactionReceipt(ctx, txHash)
	if err != nil {
		return TxDetails{}, err
	}

	latest, err := c.latestBlockNumber(ctx)
	if err != nil {
		return TxDetails{}, err
	}

	txBlock := receipt.BlockNumber.Uint64()
	var confirmations uint64
	if latest > txBlock {
		confirmations = latest - txBlock
	}

	var to string
	if tx.To != nil {
		to = strings.ToLower(tx.To.Hex())
	}

	value := new(big.Int)
	if tx.Value != nil {
		value = tx.Value.ToInt()
	}

	return TxDetails{
		Hash:          strings.ToLower(tx.Hash.Hex()),
		From:          strings.ToLower(tx.From.Hex()),
		To:            to,
		Value:         value,
		Input:         hexutil.Encode(tx.Input),
		BlockNumber:   txBlock,
		Confirmations: confirmations,
		Succeeded:     receipt.Status == types.ReceiptStatusSuccessful,
		Confirmed:     confirmations >= FinalityConfirmations,
		Logs:          receipt.Logs,
	}, nil
}

// WaitForReceipt polls for the transaction receipt on a fixed interval until
// it appears or the attempt budget runs out. This is the only blocking call
// in the client; callers own keeping attempts*interval inside their request
// deadline.
func (c *Client) WaitForReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	for attempt := 0; attempt < c.waitAttempts; attempt++ {
		receipt, err := c.transactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ErrTxNotFound) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrReceiptTimeout, ctx.Err())
		case <-time.After(c.waitInterval):
		}
	}
	return nil, ErrReceiptTimeout
}

// TokenBalance reads balanceOf(address) on an ERC-20 contract. An empty or
// "0x" result decodes to zero.
func (c *Client) TokenBalance(ctx context.Context, tokenContract, address string) (*big.Int, error) {
	addr := common.HexToAddress(address)
	data := balanceOfSelector + common.Bytes2Hex(common.LeftPadBytes(addr.Bytes(), 32))

	result, err := c.call(ctx, tokenContract, data)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return new(big.Int), nil
	}
	return new(big.Int).SetBytes(result), nil
}

func (c *Client) transactionByHash(ctx context.Context, txHash string) (*rpcTransaction, error) {
	var tx *rpcTransaction
	if err := c.callRPC(ctx, &tx, "eth_getTransactionByHash", txHash); err != nil {
		return nil, err
	}
	if tx == nil || tx.BlockNumber == nil {
		return nil, ErrTxNotFound
	}
	return tx, nil
}

func (c *Client) transactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	var receipt *types.Receipt
	if err := c.callRPC(ctx, &receipt, "eth_getTransactionReceipt", txHash); err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrTxNotFound
	}
	return receipt, nil
}

func (c *Client) latestBlockNumber(ctx context.Context) (uint64, error) {
	var latest hexutil.Uint64
	if err := c.callRPC(ctx, &latest, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return uint64(latest), nil
}

func (c *Client) call(ctx context.Context, to, data string) (hexutil.Bytes, error) {
	var result hexutil.Bytes
	msg := map[string]any{
		"to":   to,
		"data": data,
	}
	if err := c.callRPC(ctx, &result, "eth_call", msg, "latest"); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) callRPC(ctx context.Context, result any, method string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	if err := c.rpc.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChainUnavailable, method, err)
	}
	return nil
}
