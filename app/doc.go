/*
Package app contains the pieces needed to turn a stack of handlers into an
ABCI application.

A Router dispatches every message to the handler registered for its path.
ChainDecorators wraps the router with the common middleware. StoreApp keeps
the committed state with separate check and deliver caches, answers queries
and loads the genesis. BaseApp adds CheckTx and DeliverTx on top of it.
*/
package app
