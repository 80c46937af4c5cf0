package subject

// Subject is a named category partitioning an independent question
// bank, stats set, and result history. Deleting a subject does not
// cascade-delete its data.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Defaults returns the bundled subject catalogue used when no custom
// subjects have been stored.
func Defaults() []Subject {
	return []Subject{
		{ID: "network", Name: "網路基礎知識", Description: "電腦網路基礎概念與通訊協定", Icon: "🌐"},
		{ID: "rfid", Name: "RFID 技術", Description: "無線射頻識別技術與應用", Icon: "📡"},
		{ID: "programming", Name: "程式設計", Description: "程式設計基礎與演算法", Icon: "💻"},
		{ID: "system", Name: "系統開發", Description: "系統分析與軟體開發", Icon: "🛠️"},
	}
}
