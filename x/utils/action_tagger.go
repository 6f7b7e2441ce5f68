package utils

import (
	"github.com/iov-one/swapkit"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is used by ActionTagger as the Key in the Tag it appends
const ActionKey = "action"

// ActionTagger adds a tag `action = msg.Path()` to every successfully
// delivered transaction, so that clients can subscribe to all escrow
// settlements or token transfers with a single query.
type ActionTagger struct{}

var _ swapkit.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Checker) (*swapkit.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Deliverer) (*swapkit.DeliverResult, error) {
	// fail early if the message cannot be read
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
