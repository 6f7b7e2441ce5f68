/*
Package swapkit defines the interfaces shared by every extension of the
escrow application: storage, transactions, handlers, authentication
conditions and the abci result helpers.

Extensions live under x/. Each one declares its messages, models and
handlers and registers them on a router in the app package. The daemon
in cmd/swapd wires everything together behind an abci server.
*/
package swapkit
