package quiz

var (
	femaleNames = []string{"Ana", "Beatriz", "Camila", "Fernanda", "Helena", "Juliana", "Luíza", "Mariana", "Patrícia", "Sofia"}
	maleNames   = []string{"Bruno", "Carlos", "Diego", "Eduardo", "Felipe", "Gustavo", "João", "Lucas", "Marcelo", "Rafael"}
)

const (
	sexFemale = "feminino"
	sexMale   = "masculino"
)

func (e *Engine) drawPatient(r Rand) Patient {
	sex, names := sexFemale, femaleNames
	if r.IntN(2) == 1 {
		sex, names = sexMale, maleNames
	}
	return Patient{
		Name: names[r.IntN(len(names))],
		Age:  e.cfg.MinAge + r.IntN(e.cfg.MaxAge-e.cfg.MinAge+1),
		Sex:  sex,
	}
}
