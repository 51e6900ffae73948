package usecase

import (
	"fmt"

	"foodcart/internal/domain/model"
)

// カートパネルの1行
type PanelRow struct {
	// 削除フォームで送る保存時の名前（表示用のNameとは別）
	Key       string
	Img       string
	Name      string
	Price     string
	Qty       int
	LineTotal string
}

// カートパネル（ヘッダー5列目に合計）
type PanelView struct {
	Rows       []PanelRow
	Total      string
	TotalValue float64
	// 数値チェックで落とした明細
	Skipped []string
}

// 注文確認テーブルの1行（1始まりの番号付き）
type OrderRow struct {
	Index int
	PanelRow
}

// 注文確認テーブル（ヘッダー6列目に合計）
type OrderView struct {
	Rows       []OrderRow
	Total      string
	TotalValue float64
	Skipped    []string
}

// "$26.00"
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// カートからパネルを毎回作り直す
func BuildPanel(cart model.Cart) PanelView {
	out := PanelView{Rows: make([]PanelRow, 0, len(cart))}

	var total float64
	for _, it := range cart {
		if !it.Valid() {
			out.Skipped = append(out.Skipped, it.Name)
			continue
		}

		total += it.LineTotal()
		out.Rows = append(out.Rows, toPanelRow(it))
	}

	out.TotalValue = total
	out.Total = FormatMoney(total)
	return out
}

// 注文確認テーブルを毎回作り直す。番号はカート内の位置。
func BuildOrderTable(cart model.Cart) OrderView {
	out := OrderView{Rows: make([]OrderRow, 0, len(cart))}

	var total float64
	for i, it := range cart {
		if !it.Valid() {
			out.Skipped = append(out.Skipped, it.Name)
			continue
		}

		total += it.LineTotal()
		out.Rows = append(out.Rows, OrderRow{Index: i + 1, PanelRow: toPanelRow(it)})
	}

	out.TotalValue = total
	out.Total = FormatMoney(total)
	return out
}

func toPanelRow(it model.LineItem) PanelRow {
	return PanelRow{
		Key:       it.Name,
		Img:       it.Img,
		Name:      it.Name,
		Price:     FormatMoney(it.Price),
		Qty:       it.Qty,
		LineTotal: FormatMoney(it.LineTotal()),
	}
}
