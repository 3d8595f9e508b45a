package cosmic // import "fpoint.dev/cosmic"

import (
	"fmt"
	"strings"
)

// MovementType classifies a single COSMIC data movement.
type MovementType string

const (
	Entry MovementType = "E"
	Exit  MovementType = "X"
	Read  MovementType = "R"
	Write MovementType = "W"
)

// ParseMovementType maps a case-insensitive string onto a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch t := MovementType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Entry, Exit, Read, Write:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported data movement type %q, expected one of: E, X, R, W", s)
	}
}

// DataMovement is one classified unit of data transfer within a functional
// process. Each movement counts as one CFP.
type DataMovement struct {
	Type             MovementType
	Description      string
	ObjectOfInterest string
	Trigger          string
	CodeReference    string
	Notes            string
}

// FunctionalProcess is a named unit of behavior composed of an ordered set
// of data movements.
type FunctionalProcess struct {
	Name             string
	Description      string
	Trigger          string
	ObjectOfInterest string
	Movements        []DataMovement
}

// Count returns the number of movements of the given type.
func (p *FunctionalProcess) Count(t MovementType) int {
	n := 0
	for _, m := range p.Movements {
		if m.Type == t {
			n++
		}
	}
	return n
}

// TotalCFP is the CFP contribution of this process, one per movement.
func (p *FunctionalProcess) TotalCFP() int {
	return len(p.Movements)
}

// Measurement is a full COSMIC measurement for one system boundary.
type Measurement struct {
	Name                 string
	Boundary             string
	Description          string
	PersistenceResources []string
	ExternalActors       []string
	ObjectsOfInterest    []string
	Processes            []FunctionalProcess
}

// TotalCFP is the CFP total across all functional processes.
func (m *Measurement) TotalCFP() int {
	n := 0
	for i := range m.Processes {
		n += m.Processes[i].TotalCFP()
	}
	return n
}
