package generation

type Level string

const (
	LevelA1 Level = "A1"
	LevelB1 Level = "B1"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

func (l Level) Valid() bool {
	switch l {
	case LevelA1, LevelB1, LevelC1, LevelC2:
		return true
	}
	return false
}

type Kind string

const (
	KindQuiz       Kind = "QUIZ"
	KindGrammar    Kind = "GRAMMAR"
	KindVocabulary Kind = "VOCABULARY"
	KindTheory     Kind = "THEORY"
)

func (k Kind) Valid() bool {
	switch k {
	case KindQuiz, KindGrammar, KindVocabulary, KindTheory:
		return true
	}
	return false
}

// Foco retorna o rótulo do tipo de conteúdo usado nos prompts.
func (k Kind) Foco() string {
	switch k {
	case KindGrammar:
		return "Gramática"
	case KindVocabulary:
		return "Vocabulário"
	case KindTheory:
		return "Teoria"
	default:
		return "Quiz"
	}
}

type Request struct {
	Topic    string `json:"topic"`
	Level    Level  `json:"level"`
	Quantity int    `json:"quantity"`
	Kind     Kind   `json:"kind"`
}
