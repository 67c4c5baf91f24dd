package models

import (
	"fmt"

	"github.com/uptrace/bun"
)

// Asset is an uploaded image served from a CDN.
type Asset struct {
	bun.BaseModel `bun:"table:assets,alias:a"`

	ID        string `bun:"id,pk" json:"id"`
	CDN       string `bun:"cdn,notnull" json:"cdn"`
	Key       string `bun:"key,notnull" json:"key"`
	Extension string `bun:"extension,notnull" json:"extension"`
}

// AssetURL builds the public URL for an asset. Empty parts give "".
func AssetURL(cdn, key, extension string) string {
	if cdn == "" || key == "" {
		return ""
	}
	return fmt.Sprintf("https://%s/%s.%s", cdn, key, extension)
}
