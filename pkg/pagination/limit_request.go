package pagination

// LimitRequest represents a "first N items" request
type LimitRequest struct {
	Limit int `json:"limit" query:"limit"`
}

// Validate normalizes the limit onto [1, PageMaxSize]
func (r *LimitRequest) Validate() error {
	r.Limit = Clamp(r.Limit, PageDefaultSize, PageMaxSize)
	return nil
}

// Clamp returns def for non-positive sizes and caps the rest at maxSize.
func Clamp(size, def, maxSize int) int {
	if size <= 0 {
		return def
	}
	if size > maxSize {
		return maxSize
	}
	return size
}
