// Package policy implements the scheduler family described by the
// simulation's spec: PS, FIFO, SRPT, SRPT+PS, FSP, FSP+PS, LAS, FSP+LAS.
//
// Each type implements sim.Policy; register.go wires NewPolicy into
// sim.NewPolicyFunc so callers need only `import _ "github.com/jobsched/schedsim/sim/policy"`
// (or a direct import, when they also reference a concrete type) to make
// NewPolicy("...") work.
package policy

import "github.com/jobsched/schedsim/sim"

// eps is the policy-level floating tolerance (spec §6): the slack FSP and
// SRPT+PS use when deciding a job is "effectively" finished in virtual or
// announced time. Matches the original implementation's default of 1e-6.
const eps = 1e-6

type JobID = sim.JobID
type Allocation = sim.Allocation
