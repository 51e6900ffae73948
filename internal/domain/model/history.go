package model

// 注文確定時のカートのスナップショット
type HistoryEntry struct {
	Date  string  `json:"date"`
	Items Cart    `json:"items"`
	Total float64 `json:"total"`
}

// 注文履歴（追記のみ）
type HistoryLog []HistoryEntry
