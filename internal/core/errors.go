package core

import "errors"

// Request-scoped failures.
var ErrRequestExpired error = errors.New("request expired or timestamp invalid")
var ErrPermissionDenied error = errors.New("permission denied")

// Claim failures.
var ErrTooFar error = errors.New("too far from item")
var ErrSecretUnavailable error = errors.New("failed to decrypt wallet key")

// Purchase settlement failures.
var ErrTxFailed error = errors.New("transaction failed on chain")
var ErrNotConfirmedYet error = errors.New("transaction not confirmed yet")
var ErrNoPaymentFound error = errors.New("no token transfer to recipient found in transaction")
var ErrInsufficientPayment error = errors.New("payment amount insufficient")
var ErrRefundPending error = errors.New("purchase failed, funds marked for refund")

// Drop failures.
var ErrNoTokensReceived error = errors.New("no tokens received at drop address")
var ErrTokenNotAllowed error = errors.New("token contract not in registry")

// Land edit failures.
var ErrNothingUpdated error = errors.New("no parcels were updated")
