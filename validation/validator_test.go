package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint_Coercion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want FlexUint
	}{
		{"number", `{"v": 12}`, 12},
		{"numeric string", `{"v": "12"}`, 12},
		{"empty string", `{"v": ""}`, 0},
		{"garbage", `{"v": "dua belas"}`, 0},
		{"negative", `{"v": -3}`, 0},
		{"float", `{"v": 3.5}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				V FlexUint `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.in), &out))
			assert.Equal(t, tc.want, out.V)
		})
	}
}

func TestMessage_JoinsMissingFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Struct(OpenStoreRequest{NamaToko: "Toko"})
	require.Error(t, err)

	fields := MissingFields(err)
	assert.Contains(t, fields, "kode_pos")
	assert.Contains(t, fields, "provinsi")
	assert.NotContains(t, fields, "nama_toko")

	msg := Message(err)
	assert.Contains(t, msg, "kode_pos")
	assert.Contains(t, msg, "wajib diisi")
}

func TestValidate_FullRequestPasses(t *testing.T) {
	v := New()

	req := OpenStoreRequest{
		NamaToko:      "Toko Maju Jaya",
		DeskripsiToko: "Elektronik",
		AlamatToko:    "Jl. Merdeka No. 1",
		Provinsi:      32,
		KotaKabupaten: 3273,
		Kecamatan:     327301,
		Kelurahan:     32730101,
		KodePos:       "40111",
	}
	assert.NoError(t, v.Struct(req))
}
