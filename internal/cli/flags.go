package cli

import (
	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*programValue)(nil)

// programValue adapts domain.Program to pflag.Value.
type programValue domain.Program

func (p *programValue) String() string { return string(*p) }

func (p *programValue) Set(s string) error {
	prog, err := domain.ParseProgram(s)
	if err != nil {
		return err
	}
	*p = programValue(prog)
	return nil
}

func (p *programValue) Type() string { return "program" }
