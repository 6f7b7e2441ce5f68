package escrow

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/gconf"
	"github.com/iov-one/swapkit/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		genesis := `
		{
			"conf": {
				"escrow": {
					"metadata": {"schema": 1},
					"program_id": "A0A1A2A3A4A5A6A7A8A9B0B1B2B3B4B5B6B7B8B9",
					"record_deposit": 7
				}
			}
		}`
		var opts swapkit.Options
		So(json.Unmarshal([]byte(genesis), &opts), ShouldBeNil)

		db := store.MemStore()
		var init Initializer
		So(init.FromGenesis(opts, db), ShouldBeNil)

		Convey("Configuration is stored", func() {
			var conf Configuration
			So(gconf.Load(db, "escrow", &conf), ShouldBeNil)
			So(conf.RecordDeposit, ShouldEqual, 7)
			So(conf.ProgramID.String(), ShouldEqual, "A0A1A2A3A4A5A6A7A8A9B0B1B2B3B4B5B6B7B8B9")
		})
	})

	Convey("Configuration is required", t, func() {
		var opts swapkit.Options
		So(json.Unmarshal([]byte(`{}`), &opts), ShouldBeNil)

		var init Initializer
		So(init.FromGenesis(opts, store.MemStore()), ShouldNotBeNil)
	})

	Convey("Program id is required", t, func() {
		var opts swapkit.Options
		raw := `{"conf": {"escrow": {"metadata": {"schema": 1}, "record_deposit": 1}}}`
		So(json.Unmarshal([]byte(raw), &opts), ShouldBeNil)

		var init Initializer
		So(init.FromGenesis(opts, store.MemStore()), ShouldNotBeNil)
	})
}
