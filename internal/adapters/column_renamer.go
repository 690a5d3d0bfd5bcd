package adapters

import (
	"fmt"
	"math/big"
	"strings"

	"gwspec/internal/ports"
)

const encodedFieldPrefix = "GW_"

// ColumnRenamerAdapter derives field ids from display names. Empty names are
// replaced by their position, duplicates are suffixed in order of
// appearance, and the result is base-36 encoded so it contains only
// [0-9A-Z_].
type ColumnRenamerAdapter struct{}

func NewColumnRenamerAdapter() ColumnRenamerAdapter {
	return ColumnRenamerAdapter{}
}

func (a ColumnRenamerAdapter) RenameColumns(names []string) []string {
	used := make(map[string]struct{}, len(names))
	for _, name := range names {
		used[name] = struct{}{}
	}
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("col_%d", i)
		}
		count := seen[name]
		seen[name] = count + 1
		unique := name
		for count > 0 {
			unique = fmt.Sprintf("%s_%d", name, count)
			if _, taken := used[unique]; !taken {
				break
			}
			count++
		}
		used[unique] = struct{}{}
		out[i] = EncodeFieldName(unique)
	}
	return out
}

// EncodeFieldName returns the encoded identifier for one display name.
func EncodeFieldName(name string) string {
	value := new(big.Int).SetBytes([]byte(name))
	return encodedFieldPrefix + strings.ToUpper(value.Text(36))
}

var _ ports.ColumnRenamerPort = ColumnRenamerAdapter{}
