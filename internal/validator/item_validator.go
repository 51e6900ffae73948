package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"foodcart/internal/domain/model"
)

var (
	// 商品名が空
	ErrInvalidName = errors.New("invalid name")

	// 価格が数値でない
	ErrInvalidPrice = errors.New("invalid price")

	// 数量が数値でない
	ErrInvalidQuantity = errors.New("invalid quantity")
)

const currencySymbol = "$"

// 画面から来た文字列を明細に変換（加算前のチェック）
func ParseLineItem(name string, price string, qty string, img string) (model.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.LineItem{}, ErrInvalidName
	}

	p, err := ParsePrice(price)
	if err != nil {
		return model.LineItem{}, err
	}
	if p < 0 {
		return model.LineItem{}, ErrInvalidPrice
	}

	q, err := ParseQuantity(qty)
	if err != nil {
		return model.LineItem{}, err
	}
	if q < 1 {
		return model.LineItem{}, ErrInvalidQuantity
	}

	return model.LineItem{
		Name:  name,
		Price: p,
		Qty:   q,
		Img:   strings.TrimSpace(img),
	}, nil
}

// "$9.99" / "9.99" を数値に
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.Replace(s, currencySymbol, "", 1))
	if s == "" {
		return 0, ErrInvalidPrice
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidPrice
	}
	return f, nil
}

// 数量は整数。"2.5" のような小数は切り捨て。上限を超えたらエラー。
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidQuantity
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n > model.MaxQuantity || n < -model.MaxQuantity {
			return 0, ErrInvalidQuantity
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > model.MaxQuantity {
		return 0, ErrInvalidQuantity
	}
	return int(math.Trunc(f)), nil
}
