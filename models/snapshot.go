package models

import "time"

// Snapshot types là các read view bất biến được cache theo tenant.
// Sau khi build xong thì không sửa tại chỗ; muốn refresh thì build snapshot mới
// thay thế toàn bộ entry cũ trong cache.

// PrintOptionView là một print option trong snapshot của tenant
type PrintOptionView struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// PrintOptionSnapshot là danh sách print options đang active được gán cho tenant,
// đã sắp xếp theo position
type PrintOptionSnapshot struct {
	Tenant  string            `json:"tenant"`
	Options []PrintOptionView `json:"options"`
	BuiltAt time.Time         `json:"built_at"`
}

// ApplicationView là một application trong snapshot của tenant
type ApplicationView struct {
	Code string `json:"code"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ApplicationSnapshot là danh sách applications đang active được gán cho tenant
type ApplicationSnapshot struct {
	Tenant       string            `json:"tenant"`
	Applications []ApplicationView `json:"applications"`
	BuiltAt      time.Time         `json:"built_at"`
}
