package cosmic

// ProcessSummary aggregates the CFP counts of one functional process.
type ProcessSummary struct {
	Name             string
	Entries          int
	Exits            int
	Reads            int
	Writes           int
	TotalCFP         int
	Trigger          string
	ObjectOfInterest string
	Description      string
}

// SummarizeProcess computes the per-type movement counts for one process.
func SummarizeProcess(p *FunctionalProcess) ProcessSummary {
	return ProcessSummary{
		Name:             p.Name,
		Entries:          p.Count(Entry),
		Exits:            p.Count(Exit),
		Reads:            p.Count(Read),
		Writes:           p.Count(Write),
		TotalCFP:         p.TotalCFP(),
		Trigger:          p.Trigger,
		ObjectOfInterest: p.ObjectOfInterest,
		Description:      p.Description,
	}
}

// Summarize returns one summary per functional process, in process order.
func Summarize(m *Measurement) []ProcessSummary {
	sums := make([]ProcessSummary, 0, len(m.Processes))
	for i := range m.Processes {
		sums = append(sums, SummarizeProcess(&m.Processes[i]))
	}
	return sums
}
