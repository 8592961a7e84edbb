package config

import (
	"os"
	"strconv"
)

// DefaultPerPage is applied when a pagination request omits per_page.
func DefaultPerPage() int {
	if v, err := strconv.Atoi(os.Getenv("DEFAULT_PER_PAGE")); err == nil && v > 0 {
		return v
	}
	return 10
}
