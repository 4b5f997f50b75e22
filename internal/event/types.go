// internal/event/types.go
package event

const (
	RoundStarted   EventType = "RoundStarted"   // Новый раунд, Data: длина слова
	LetterRevealed EventType = "LetterRevealed" // Угаданная буква, Data: rune
	LetterMissed   EventType = "LetterMissed"   // Промах, Data: round.Miss
	RoundWon       EventType = "RoundWon"       // Слово открыто полностью
	RoundLost      EventType = "RoundLost"      // Фигура разобрана, Data: загаданное слово
	FigureChosen   EventType = "FigureChosen"   // Выбран стиль фигуры
)
