package usecase

import (
	"bytes"
	"encoding/json"
	"math"

	"foodcart/internal/domain/model"
	"foodcart/internal/validator"
)

// 保存済みの明細。price/qtyは数値でも文字列でも読む。
type storedItem struct {
	Name  string          `json:"name"`
	Price json.RawMessage `json:"price"`
	Qty   json.RawMessage `json:"qty"`
	Img   string          `json:"img"`
}

// 保存済みのカートを読み、数値にならない明細は落とす。
// 全体が壊れていたらエラー（呼び出し側で空カート扱い）。
func decodeCart(raw string) (model.Cart, []storedItem, error) {
	var stored []storedItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return model.Cart{}, nil, err
	}

	cart := make(model.Cart, 0, len(stored))
	var dropped []storedItem
	for _, s := range stored {
		price, ok := parseStoredPrice(s.Price)
		if !ok {
			dropped = append(dropped, s)
			continue
		}
		qty, ok := parseStoredQty(s.Qty)
		if !ok {
			dropped = append(dropped, s)
			continue
		}

		cart = append(cart, model.LineItem{
			Name:  s.Name,
			Price: price,
			Qty:   qty,
			Img:   s.Img,
		})
	}
	return cart, dropped, nil
}

func encodeCart(cart model.Cart) (string, error) {
	if cart == nil {
		cart = model.Cart{}
	}
	b, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseStoredPrice(raw json.RawMessage) (float64, bool) {
	if n, ok := rawNumber(raw); ok {
		return n, true
	}
	if s, ok := rawString(raw); ok {
		f, err := validator.ParsePrice(s)
		return f, err == nil
	}
	return 0, false
}

func parseStoredQty(raw json.RawMessage) (int, bool) {
	if n, ok := rawNumber(raw); ok {
		if math.Abs(n) > model.MaxQuantity {
			return 0, false
		}
		return int(math.Trunc(n)), true
	}
	if s, ok := rawString(raw); ok {
		q, err := validator.ParseQuantity(s)
		return q, err == nil
	}
	return 0, false
}

func rawNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func rawString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
