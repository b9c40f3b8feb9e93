package quiz

import (
	"fmt"
	"slices"

	"github.com/abhisek/lymphiz/internal/drainage"
)

// Config controls the generators.
type Config struct {
	// MaxAttempts bounds every redraw loop.
	MaxAttempts int

	// AllowTrivialSequences presents single-structure routes in the
	// sequence game instead of redrawing them.
	AllowTrivialSequences bool

	// MinAge and MaxAge bound clinical case patients, inclusive.
	MinAge int
	MaxAge int
}

// DefaultConfig returns the generator defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 100,
		MinAge:      25,
		MaxAge:      80,
	}
}

// Engine builds quiz instances from a dataset. It holds no mutable state;
// every call takes the caller's random source, so one Engine can serve
// many sessions.
type Engine struct {
	ds         *drainage.Dataset
	cfg        Config
	organs     []drainage.Organ
	caseOrgans []drainage.Organ
	pool       []string
}

// NewEngine creates an Engine over ds.
func NewEngine(ds *drainage.Dataset, cfg Config) *Engine {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.MaxAge < cfg.MinAge || cfg.MinAge <= 0 {
		cfg.MinAge, cfg.MaxAge = DefaultConfig().MinAge, DefaultConfig().MaxAge
	}
	return &Engine{
		ds:         ds,
		cfg:        cfg,
		organs:     ds.Organs(),
		caseOrgans: ds.CaseOrgans(),
		pool:       ds.AllNodes().Names(),
	}
}

// Dataset returns the dataset the engine draws from.
func (e *Engine) Dataset() *drainage.Dataset {
	return e.ds
}

// Question builds a multiple-choice question for mode.
func (e *Engine) Question(r Rand, mode Mode) (*Question, error) {
	switch mode {
	case ModeNextStep:
		return e.NextStep(r)
	case ModeClinicalCase:
		return e.ClinicalCase(r)
	default:
		return nil, fmt.Errorf("mode %q has no multiple-choice question", mode)
	}
}

// NextStep asks for the structure that follows a random step of a random
// route. Routes with a single structure are redrawn.
func (e *Engine) NextStep(r Rand) (*Question, error) {
	for attempt := 0; attempt < e.cfg.MaxAttempts; attempt++ {
		organ := e.organs[r.IntN(len(e.organs))]
		route := organ.Routes[r.IntN(len(organ.Routes))]
		if len(route.Path) < 2 {
			continue
		}

		i := r.IntN(len(route.Path) - 1)
		current, answer := route.Path[i], route.Path[i+1]
		if current == answer {
			continue
		}

		options, err := e.options(r, answer, NewSet(answer, current))
		if err != nil {
			return nil, fmt.Errorf("next-step distractors: %w", err)
		}

		return &Question{
			Mode:       ModeNextStep,
			Prompt:     fmt.Sprintf("%s · %s\nApós %s, para onde segue a linfa?", organ.Name, route.Label, current),
			Options:    options,
			Answer:     answer,
			OrganKey:   organ.Key,
			OrganName:  organ.Name,
			RouteLabel: route.Label,
			Path:       route.Path,
			Current:    current,
		}, nil
	}
	return nil, &GenerationError{
		Mode:     ModeNextStep,
		Attempts: e.cfg.MaxAttempts,
		Reason:   "no route with two consecutive distinct structures",
	}
}

// ClinicalCase draws a patient narrative for an organ with a case template
// and asks for the drainage station at the organ's case index.
func (e *Engine) ClinicalCase(r Rand) (*Question, error) {
	if len(e.caseOrgans) == 0 {
		return nil, &GenerationError{Mode: ModeClinicalCase, Reason: "no organ has a clinical case template"}
	}

	for attempt := 0; attempt < e.cfg.MaxAttempts; attempt++ {
		organ := e.caseOrgans[r.IntN(len(e.caseOrgans))]
		route := organ.Routes[r.IntN(len(organ.Routes))]
		if len(route.Path) <= organ.CaseStation {
			continue
		}
		answer := route.Path[organ.CaseStation]

		patient := e.drawPatient(r)
		prompt, err := e.ds.RenderCase(organ.Key, drainage.CaseData{
			Name:  patient.Name,
			Age:   patient.Age,
			Sex:   patient.Sex,
			Route: route.Label,
			Organ: organ.Name,
		})
		if err != nil {
			return nil, err
		}

		options, err := e.options(r, answer, NewSet(answer))
		if err != nil {
			return nil, fmt.Errorf("clinical-case distractors: %w", err)
		}

		return &Question{
			Mode:       ModeClinicalCase,
			Prompt:     prompt,
			Options:    options,
			Answer:     answer,
			OrganKey:   organ.Key,
			OrganName:  organ.Name,
			RouteLabel: route.Label,
			Path:       route.Path,
			Patient:    &patient,
		}, nil
	}
	return nil, &GenerationError{
		Mode:     ModeClinicalCase,
		Attempts: e.cfg.MaxAttempts,
		Reason:   "no route long enough for the tested station",
	}
}

// Sequence shuffles a random route. The shown order always differs from
// the route unless trivial sequences are allowed and the route has a
// single structure.
func (e *Engine) Sequence(r Rand) (*SequenceGame, error) {
	for attempt := 0; attempt < e.cfg.MaxAttempts; attempt++ {
		organ := e.organs[r.IntN(len(e.organs))]
		route := organ.Routes[r.IntN(len(organ.Routes))]

		correct := slices.Clone(route.Path)
		shuffled := slices.Clone(route.Path)

		if !shufflable(correct) {
			if len(correct) == 1 && e.cfg.AllowTrivialSequences {
				return newSequenceGame(organ, route, correct, shuffled), nil
			}
			continue
		}

		for redraw := 0; redraw < e.cfg.MaxAttempts; redraw++ {
			r.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			if !slices.Equal(shuffled, correct) {
				return newSequenceGame(organ, route, correct, shuffled), nil
			}
		}
	}
	return nil, &GenerationError{
		Mode:     ModeSequence,
		Attempts: e.cfg.MaxAttempts,
		Reason:   "no route can be shown out of order",
	}
}

func newSequenceGame(organ drainage.Organ, route drainage.Route, correct, shuffled []string) *SequenceGame {
	return &SequenceGame{
		OrganKey:   organ.Key,
		OrganName:  organ.Name,
		RouteLabel: route.Label,
		Correct:    correct,
		Shuffled:   shuffled,
	}
}

// shufflable reports whether some permutation of path differs from it.
func shufflable(path []string) bool {
	for _, step := range path[1:] {
		if step != path[0] {
			return true
		}
	}
	return false
}

func (e *Engine) options(r Rand, answer string, exclude Set) ([]string, error) {
	distractors, err := Sample(r, e.pool, exclude, distractorCount)
	if err != nil {
		return nil, err
	}
	options := append(distractors, answer)
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
