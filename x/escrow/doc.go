/*

Package escrow implements a two party atomic swap of tokens.

The initializer locks tokens in a vault account and names the amount of the
counter token they demand in return. Initialize hands the custody of the
vault over to the vault authority, a condition derived from the program
identity that no key can sign for. From then on only this extension can
release the vault, and it does so exactly once:

	Exchange: the taker pays the demanded amount to the initializer and
	receives the whole vault balance.

	Cancel: the initializer takes the vault balance back.

Both terminal operations close the vault and destroy the escrow record,
refunding their deposits to the initializer. A destroyed record is kept as a
tombstone so that no later operation, including a new Initialize, can reuse
its ID.

*/
package escrow
