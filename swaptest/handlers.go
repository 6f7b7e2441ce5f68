package swaptest

import "github.com/iov-one/swapkit"

// Handler is a mock implementation of the swapkit.Handler interface.
//
// When WriteKey is set, the handler writes WriteValue under that key before
// returning, which allows to test rollback of failed calls. Panic, if set,
// is raised instead of returning.
type Handler struct {
	checkCall   int
	CheckResult swapkit.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult swapkit.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte

	Panic interface{}
}

var _ swapkit.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	h.checkCall++
	if err := h.run(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	h.deliverCall++
	if err := h.run(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) run(db swapkit.KVStore) error {
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	return nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
