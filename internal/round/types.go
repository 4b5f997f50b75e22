package round

// Phase — фаза раунда
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	}
	return "Unknown"
}

// Finished сообщает, закончен ли раунд.
func (p Phase) Finished() bool {
	return p == Won || p == Lost
}

// Outcome — результат одной попытки.
type Outcome int

const (
	Correct Outcome = iota
	Wrong
	AlreadyGuessed
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "Correct"
	case Wrong:
		return "Wrong"
	case AlreadyGuessed:
		return "AlreadyGuessed"
	}
	return "Unknown"
}

// Part — часть фигуры
type Part int

const (
	LeftLeg Part = iota
	RightLeg
	LeftArm
	RightArm
	Body
	Head
)

// RemovalOrder — порядок, в котором части исчезают при промахах.
var RemovalOrder = [...]Part{LeftLeg, RightLeg, LeftArm, RightArm, Body, Head}

// PartCount — сколько промахов допускается за раунд.
const PartCount = len(RemovalOrder)

func (p Part) String() string {
	switch p {
	case LeftLeg:
		return "left_leg"
	case RightLeg:
		return "right_leg"
	case LeftArm:
		return "left_arm"
	case RightArm:
		return "right_arm"
	case Body:
		return "body"
	case Head:
		return "head"
	}
	return "unknown"
}

// Blank — маркер неоткрытой позиции в Display.
const Blank = '_'

// Miss — данные события LetterMissed.
type Miss struct {
	Letter  rune
	Removed Part
}

// Snapshot — неизменяемый срез состояния раунда для рендера.
type Snapshot struct {
	Phase      Phase
	WordLength int
	Display    []rune
	Wrong      []rune
	Visible    map[Part]bool
	Remaining  int
	// Word заполняется только после проигрыша, чтобы показать ответ.
	Word string
}
