package round

import "errors"

var (
	// ErrInvalidState — операция вызвана вне допустимой фазы.
	ErrInvalidState = errors.New("round: invalid state")
	// ErrEmptyQueue — из очереди частей нечего снимать.
	ErrEmptyQueue = errors.New("round: part queue is empty")
	// ErrMalformedWord — слово пустое или содержит не буквы A-Z.
	ErrMalformedWord = errors.New("round: malformed word")
	// ErrInvalidLetter — попытка не является буквой.
	ErrInvalidLetter = errors.New("round: invalid letter")
)
