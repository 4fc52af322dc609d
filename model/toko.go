package model

type Toko struct {
	ID            uint   `json:"id"`
	NamaToko      string `json:"nama_toko"`
	DeskripsiToko string `json:"deskripsi_toko"`
	AlamatToko    string `json:"alamat_toko"`
	Provinsi      uint   `json:"provinsi"`
	KotaKabupaten uint   `json:"kota_kabupaten"`
	Kecamatan     uint   `json:"kecamatan"`
	Kelurahan     uint   `json:"kelurahan"`
	KodePos       string `json:"kode_pos"`
	Status        string `json:"status"`
}
