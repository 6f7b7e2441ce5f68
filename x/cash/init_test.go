package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		genesis := `
		{
			"cash": [
				{"address": "0102030405060708090021222324252627282930", "amount": 120},
				{"address": "hex:A0A1A2A3A4A5A6A7A8A9B0B1B2B3B4B5B6B7B8B9", "amount": 5}
			]
		}`
		var opts swapkit.Options
		So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)

		db := store.MemStore()
		var init Initializer
		So(init.FromGenesis(opts, db), ShouldBeNil)

		ctrl := NewController(NewWalletBucket())

		Convey("Balances are issued", func() {
			addr, err := swapkit.ParseAddress("0102030405060708090021222324252627282930")
			So(err, ShouldBeNil)
			got, err := ctrl.Balance(db, addr)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 120)

			addr, err = swapkit.ParseAddress("A0A1A2A3A4A5A6A7A8A9B0B1B2B3B4B5B6B7B8B9")
			So(err, ShouldBeNil)
			got, err = ctrl.Balance(db, addr)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 5)
		})
	})

	Convey("Invalid address is rejected", t, func() {
		var opts swapkit.Options
		So(json.Unmarshal([]byte(`{"cash": [{"address": "1234", "amount": 1}]}`), &opts), ShouldBeNil)

		var init Initializer
		So(init.FromGenesis(opts, store.MemStore()), ShouldNotBeNil)
	})
}
