package sim

import "fmt"

// Policy is the scheduler interface every scheduling discipline implements:
// PS, FIFO, SRPT, SRPT+PS, FSP, FSP+PS, LAS, FSP+LAS (see sim/policy).
//
// All methods are synchronous and non-blocking; Schedule(t) is the single
// synchronization point at which the allocation may change. Implementations
// must call their internal update(t) bookkeeping exactly once per distinct
// externally-observed time advance.
type Policy interface {
	// Enqueue admits a job at time t with the scheduler-visible
	// (possibly noisy) announced size.
	Enqueue(t float64, id JobID, announcedSize float64)

	// Dequeue removes a job the driver has determined to be complete.
	// Implementations panic if id is not present — always a driver/policy
	// bug per the error handling design (missing-job dequeue).
	Dequeue(t float64, id JobID)

	// Schedule returns the current allocation: positive shares summing to
	// <= 1, and == 1 whenever any job is present.
	Schedule(t float64) Allocation

	// NextInternalEvent returns the simulated time until the policy's
	// allocation would change with no external event, or false if no such
	// internal transition is pending. Implemented by every policy but not
	// consulted by Simulator.Run (see DESIGN.md's Open Question log) —
	// exposed for callers building an alternative driver loop.
	NextInternalEvent() (dt float64, ok bool)
}

// NewPolicyFunc is set by sim/policy's init() to bridge this package's
// Policy interface to the concrete scheduler family, avoiding an import
// cycle between sim (interface owner) and sim/policy (implementations).
// Production code imports sim/policy for its side effect; this package's
// own tests use a blank import of sim/policy for the same reason.
var NewPolicyFunc func(name string) (Policy, error)

// ValidPolicyNames lists the scheduler names NewPolicy accepts.
var ValidPolicyNames = []string{
	"ps", "fifo", "srpt", "srpt+ps", "fsp", "fsp+ps", "las", "fsp+las",
}

// IsValidPolicyName reports whether name is recognized by NewPolicy.
func IsValidPolicyName(name string) bool {
	for _, n := range ValidPolicyNames {
		if n == name {
			return true
		}
	}
	return false
}

// NewPolicy constructs a Policy by name. Valid names are listed in
// ValidPolicyNames. Returns an error for unrecognized names or if
// sim/policy has not been imported (NewPolicyFunc is nil).
func NewPolicy(name string) (Policy, error) {
	if !IsValidPolicyName(name) {
		return nil, fmt.Errorf("sim: unknown policy %q (valid: %v)", name, ValidPolicyNames)
	}
	if NewPolicyFunc == nil {
		return nil, fmt.Errorf("sim: no policy implementations registered; import sim/policy")
	}
	return NewPolicyFunc(name)
}
