package pagination

// DefaultPageSize is the page size used when none is requested
const DefaultPageSize = 10

// MaxPageSize is the largest page size the customers endpoint serves
const MaxPageSize = 100

// PageSizes are the page sizes a browsing session may offer
var PageSizes = []int{10, 20, 50, 100}

// IsPageSize reports whether size is one of PageSizes
func IsPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
