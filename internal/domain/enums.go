package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProgram is returned when a program code is not one of the
// supported degree programs.
var ErrUnknownProgram = errors.New("unknown program")

type Program string

const (
	ProgramPS Program = "PS"
	ProgramPR Program = "PR"
	ProgramLM Program = "LM"
	ProgramTE Program = "TE"
)

// Programs lists every supported program in display order.
var Programs = []Program{ProgramPS, ProgramPR, ProgramLM, ProgramTE}

var programNames = map[Program]string{
	ProgramPS: "Licenciatura en Psicología",
	ProgramPR: "Profesorado en Psicología",
	ProgramLM: "Licenciatura en Musicoterapia",
	ProgramTE: "Licenciatura en Terapia Ocupacional",
}

// Name returns the human-readable program name.
func (p Program) Name() string {
	if n, ok := programNames[p]; ok {
		return n
	}
	return string(p)
}

// ParseProgram accepts a program code in any letter case.
func ParseProgram(s string) (Program, error) {
	p := Program(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := programNames[p]; !ok {
		return "", fmt.Errorf("%w %q (expected one of PS, PR, LM, TE)", ErrUnknownProgram, s)
	}
	return p, nil
}

type SectionKind string

const (
	KindLecture   SectionKind = "Teo"
	KindSeminar   SectionKind = "Sem"
	KindPractical SectionKind = "Prac"
)

// ValidRequirementKinds is the set of kinds a practical may require.
var ValidRequirementKinds = map[SectionKind]bool{
	KindLecture: true,
	KindSeminar: true,
}

func (k SectionKind) Label() string {
	switch k {
	case KindLecture:
		return "Teórico"
	case KindSeminar:
		return "Seminario"
	case KindPractical:
		return "Práctico"
	default:
		return string(k)
	}
}
