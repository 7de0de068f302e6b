package policy

import (
	"fmt"

	"github.com/jobsched/schedsim/sim"
)

func init() {
	sim.NewPolicyFunc = New
}

// New constructs a Policy by name. Mirrors sim.ValidPolicyNames.
func New(name string) (sim.Policy, error) {
	switch name {
	case "ps":
		return NewPS(), nil
	case "fifo":
		return NewFIFO(), nil
	case "srpt":
		return NewSRPT(), nil
	case "srpt+ps":
		return NewSRPTPlusPS(), nil
	case "fsp":
		return NewFSP(), nil
	case "fsp+ps":
		return NewFSPPlusPS(), nil
	case "las":
		return NewLAS(), nil
	case "fsp+las":
		return NewFSPLAS(), nil
	default:
		return nil, fmt.Errorf("policy: unknown policy %q", name)
	}
}
