package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest/assert"
)

type myConfig struct {
	Number uint64 `protobuf:"varint,1,opt,name=number,proto3" json:"number"`
	Text   string `protobuf:"bytes,2,opt,name=text,proto3" json:"text"`
}

func (c *myConfig) Reset()         { *c = myConfig{} }
func (c *myConfig) String() string { return proto.CompactTextString(c) }
func (*myConfig) ProtoMessage()    {}

func (c *myConfig) Validate() error {
	if c.Text == "" {
		return errors.Wrap(errors.ErrEmpty, "text")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got myConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))

	assert.IsErr(t, errors.ErrEmpty, Save(db, "mypkg", &myConfig{Number: 1}))

	want := myConfig{Number: 7, Text: "seven"}
	assert.Nil(t, Save(db, "mypkg", &want))
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, want, got)

	raw, err := db.Get([]byte("_c:mypkg"))
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("configuration not stored under the package key")
	}
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    myConfig
	}{
		"valid": {
			Genesis: `{"conf": {"mypkg": {"number": 3, "text": "three"}}}`,
			Want:    myConfig{Number: 3, Text: "three"},
		},
		"missing package": {
			Genesis: `{"conf": {"other": {"number": 3, "text": "three"}}}`,
			WantErr: errors.ErrNotFound,
		},
		"missing conf": {
			Genesis: `{}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid": {
			Genesis: `{"conf": {"mypkg": {"number": 3}}}`,
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts swapkit.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			var conf myConfig
			if err := InitConfig(db, opts, "mypkg", &conf); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			var got myConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Want, got)
		})
	}
}
