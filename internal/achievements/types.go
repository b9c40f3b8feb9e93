package achievements

// ID identifies an unlockable achievement.
type ID string

const (
	TenQuestions   ID = "ten-questions"
	FiftyQuestions ID = "fifty-questions"
	Accuracy80     ID = "accuracy-80"
	Accuracy90     ID = "accuracy-90"
	Accuracy100    ID = "accuracy-100"
)

// All returns every achievement in display order.
func All() []ID {
	return []ID{TenQuestions, FiftyQuestions, Accuracy80, Accuracy90, Accuracy100}
}

// DisplayName returns a human-readable label for the achievement.
func (id ID) DisplayName() string {
	switch id {
	case TenQuestions:
		return "Primeiros Passos"
	case FiftyQuestions:
		return "Maratonista"
	case Accuracy80:
		return "Precisão 80%"
	case Accuracy90:
		return "Precisão 90%"
	case Accuracy100:
		return "Perfeição"
	default:
		return string(id)
	}
}

// Description explains how the achievement is earned.
func (id ID) Description() string {
	switch id {
	case TenQuestions:
		return "Responda 10 perguntas"
	case FiftyQuestions:
		return "Responda 50 perguntas"
	case Accuracy80:
		return "Acerte ao menos 80% após 10 perguntas"
	case Accuracy90:
		return "Acerte ao menos 90% após 10 perguntas"
	case Accuracy100:
		return "Acerte todas as perguntas após 10 perguntas"
	default:
		return ""
	}
}

// Icon returns the display icon for the achievement.
func (id ID) Icon() string {
	switch id {
	case TenQuestions:
		return "🎯"
	case FiftyQuestions:
		return "🏃"
	case Accuracy80:
		return "🥉"
	case Accuracy90:
		return "🥈"
	case Accuracy100:
		return "🥇"
	default:
		return "✦"
	}
}
