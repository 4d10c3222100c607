package simconfig

// Config 是模擬預設值的完整設定檔
// ⭐ SSOT: 預設參數只從這裡讀
type Config struct {
	Meta     Meta     `yaml:"meta" json:"meta"`
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Catalog  Catalog  `yaml:"catalog" json:"catalog"`
}

// Meta 設定檔的識別資訊
type Meta struct {
	Name     string `yaml:"name" json:"name"`
	Version  string `yaml:"version" json:"version"`
	Timezone string `yaml:"timezone" json:"timezone"` // 固定: "Asia/Taipei"
}

// Defaults 尚未指定參數時套用的模擬預設值
type Defaults struct {
	Ticker        string `yaml:"ticker" json:"ticker"`
	TriggerDays   []int  `yaml:"trigger_days" json:"trigger_days"` // 每月扣款日, 1-31
	Amount        int64  `yaml:"amount" json:"amount"`             // 每次扣款金額 (TWD)
	LookbackYears int    `yaml:"lookback_years" json:"lookback_years"`
	Interval      string `yaml:"interval" json:"interval"` // 固定: "1d"
}

// Catalog ETF 清單來源設定
type Catalog struct {
	SeedPath string `yaml:"seed_path" json:"seed_path"` // 空字串表示使用內建清單
}
