package chain

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RPCCaller is the raw JSON-RPC transport, satisfied by *rpc.Client from
// go-ethereum.
//
//counterfeiter:generate -o fake -fake-name RPCCaller . RPCCaller
type RPCCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}
