package model

// 追加順の明細一覧。同じnameは1件だけ。
type Cart []LineItem

// nameの明細の位置を返す（無ければ-1）
func (c Cart) Find(name string) int {
	for i, it := range c {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// 有効な明細だけで合計を計算
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c {
		if !it.Valid() {
			continue
		}
		total += it.LineTotal()
	}
	return total
}

// バッジ用の数量合計
func (c Cart) ItemCount() int {
	count := 0
	for _, it := range c {
		count += it.Qty
	}
	return count
}

// 同一商品は数量加算、無ければ末尾に追加。
func (c Cart) AddOrMerge(item LineItem) Cart {
	if i := c.Find(item.Name); i >= 0 {
		out := c.Clone()
		out[i].Qty += item.Qty
		return out
	}
	return append(c.Clone(), item)
}

// 加算後も数量上限に収まるか
func (c Cart) CanAdd(item LineItem) bool {
	if item.Qty > MaxQuantity {
		return false
	}
	if i := c.Find(item.Name); i >= 0 {
		return c[i].Qty <= MaxQuantity-item.Qty
	}
	return true
}

// nameが一致する明細をすべて除く（無くてもそのまま返す）
func (c Cart) Remove(name string) Cart {
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.Name == name {
			continue
		}
		out = append(out, it)
	}
	return out
}

// スナップショット用のコピー
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
