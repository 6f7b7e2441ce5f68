/*
Package token implements fungible token accounts and the custody operations
performed on them: transfer between accounts of the same ticker, handing
the account ownership over to another address and closing an empty
account.

An account owner can be any address, including an address derived by
another extension. Such an owner can be authenticated only by the
extension that derived it, which is how funds are locked under program
control.
*/
package token
