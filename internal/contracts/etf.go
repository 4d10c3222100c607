package contracts

// ETF is one listed fund in the selectable catalog
type ETF struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
