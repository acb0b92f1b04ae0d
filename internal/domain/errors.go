package domain

import "errors"

// Два вида ошибок, на которые маппятся все ошибки бизнес-логики.
// Ошибки слоёв оборачивают один из них, чтобы handler мог выбрать HTTP статус через errors.Is
var (
	// ErrNotFound сущность не найдена или у вызывающего нет связи с ней
	ErrNotFound = errors.New("not found")

	// ErrValidation входные данные нарушают предусловие операции
	ErrValidation = errors.New("validation failed")
)
