package view

// メニューに並べる料理（フォーム1つ分）
type MenuItem struct {
	Name  string
	Price float64
	Img   string
}

// 店頭に出す既定のメニュー
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Pizza", Price: 9.99, Img: "/images/pizza.jpg"},
		{Name: "Burger", Price: 7.49, Img: "/images/burger.jpg"},
		{Name: "Momo", Price: 5.25, Img: "/images/momo.jpg"},
		{Name: "Sandwich", Price: 6.00, Img: "/images/sandwich.jpg"},
		{Name: "Soda", Price: 2.00, Img: "/images/soda.jpg"},
		{Name: "Chowmein", Price: 6.75, Img: "/images/chowmein.jpg"},
	}
}
