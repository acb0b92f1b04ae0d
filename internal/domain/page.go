package domain

// Page параметры пагинации: From - смещение первого элемента, Size - размер страницы
type Page struct {
	From int
	Size int
}

// Valid from >= 0 и size > 0
func (p Page) Valid() bool {
	return p.From >= 0 && p.Size > 0
}

// Offset смещение для выборки
func (p Page) Offset() uint64 {
	return uint64(p.From)
}

// PageOffset смещение, выровненное по началу страницы: (from / size) * size
func (p Page) PageOffset() uint64 {
	if p.Size <= 0 {
		return 0
	}
	return uint64((p.From / p.Size) * p.Size)
}

// Limit размер страницы
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}
