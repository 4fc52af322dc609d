package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexUint accepts a JSON number or a numeric string. Anything that does not
// parse as a non-negative integer becomes 0, so `required` treats it as
// missing.
type FlexUint uint

func (f *FlexUint) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexUint(n)
	return nil
}

func (f FlexUint) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint(f))
}

// OpenStoreRequest is the payload for POST /api/toko/open-store.
type OpenStoreRequest struct {
	NamaToko      string   `json:"nama_toko" validate:"required"`
	DeskripsiToko string   `json:"deskripsi_toko" validate:"required"`
	AlamatToko    string   `json:"alamat_toko" validate:"required"`
	Provinsi      FlexUint `json:"provinsi" validate:"required"`
	KotaKabupaten FlexUint `json:"kota_kabupaten" validate:"required"`
	Kecamatan     FlexUint `json:"kecamatan" validate:"required"`
	Kelurahan     FlexUint `json:"kelurahan" validate:"required"`
	KodePos       string   `json:"kode_pos" validate:"required"`
}

// WishlistToggleRequest is the payload for POST /api/wishlist.
type WishlistToggleRequest struct {
	IDProduk FlexUint `json:"id_produk" validate:"required"`
}
