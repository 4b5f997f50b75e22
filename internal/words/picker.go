package words

// Chooser — то, что умеет выбрать случайный элемент; utils.PRNGService.
type Chooser interface {
	Choose(items []string) string
}

// Picker выбирает слово для очередного раунда.
type Picker struct {
	words []string
	rng   Chooser
}

// NewPicker загружает слова из источника. Если после фильтрации
// не осталось ни одного, используется Fallback.
func NewPicker(src Source, rng Chooser) *Picker {
	words := Filter(src.LoadWords())
	if len(words) == 0 {
		words = append([]string(nil), Fallback...)
	}
	return &Picker{words: words, rng: rng}
}

// Next возвращает случайное слово.
func (p *Picker) Next() string {
	return p.rng.Choose(p.words)
}

func (p *Picker) Len() int {
	return len(p.words)
}
