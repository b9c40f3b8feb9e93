package quiz

import "fmt"

// Mode identifies a quiz variant.
type Mode string

const (
	ModeNextStep     Mode = "next-step"
	ModeClinicalCase Mode = "clinical-case"
	ModeSequence     Mode = "sequence"
)

// AllModes returns the quiz variants in display order.
func AllModes() []Mode {
	return []Mode{ModeNextStep, ModeClinicalCase, ModeSequence}
}

// DisplayName returns the label shown to players.
func (m Mode) DisplayName() string {
	switch m {
	case ModeNextStep:
		return "Próxima etapa"
	case ModeClinicalCase:
		return "Caso clínico"
	case ModeSequence:
		return "Sequência"
	default:
		return string(m)
	}
}

// ParseMode converts a flag or request value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNextStep, ModeClinicalCase, ModeSequence:
		return Mode(s), nil
	case "quiz", "next":
		return ModeNextStep, nil
	case "case", "clinical":
		return ModeClinicalCase, nil
	case "order":
		return ModeSequence, nil
	}
	return "", fmt.Errorf("unknown quiz mode %q", s)
}
