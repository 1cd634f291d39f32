package formats

import "labparse/internal/core"

func init() {
	Register(Definition{
		Key:   core.FormatDissolution.String(),
		Label: "Dissolution results",
		Guess: core.FormatDissolution,
		Parse: func(content string) Outcome {
			return wrap(core.ParseDissolution(content))
		},
	})

	Register(Definition{
		Key:   core.FormatParticleSimple.String(),
		Label: "Particle size (CSV)",
		Guess: core.FormatParticleSimple,
		Parse: func(content string) Outcome {
			return wrap(core.ParseParticleSimple(content))
		},
	})

	Register(Definition{
		Key:   core.FormatParticleMultiSection.String(),
		Label: "Particle size (Mastersizer export)",
		Guess: core.FormatParticleMultiSection,
		Parse: func(content string) Outcome {
			return wrap(core.ParseParticleMultiSection(content))
		},
	})
}

func wrap[T any](records []T, err error) Outcome {
	if err != nil {
		return Outcome{Error: core.AsParseError(err)}
	}
	return Outcome{Success: true, Data: records}
}
