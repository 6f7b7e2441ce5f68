/*
Package cash keeps the native balance of every address. The native balance
is what pays for storage: creating a token account or an escrow record
moves a deposit from the payer wallet, and destroying it refunds the
deposit to a chosen wallet.

There is no logic in the balances except that they may not go below zero
and may not overflow.
*/
package cash
