package model

import "math"

// 1明細あたりの数量上限
const MaxQuantity = 9999

// カートの明細
// nameがカート内の一意キー（同名は数量を加算）。
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Img   string  `json:"img"`
}

// 価格と数量が数値として扱えるか
func (it LineItem) Valid() bool {
	return !math.IsNaN(it.Price) && !math.IsInf(it.Price, 0)
}

// 明細の小計（price * qty）
func (it LineItem) LineTotal() float64 {
	return it.Price * float64(it.Qty)
}
