// Package bench implements the checker's benchmarking subsystem,
// supplementing a feature present in the original implementation but
// dropped from the distilled spec (_examples/original_source/src/
// benchmarking.rs): running a batch of problem/proof pairs some number of
// times each and compiling timing statistics, broken down by rule.
package bench

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/kanso-lang/alethe/internal/checker"
	"github.com/kanso-lang/alethe/internal/parser"
	"github.com/kanso-lang/alethe/internal/term"
)

// Sample pairs a labeled key (which proof and step a timing came from)
// with the duration measured for it.
type Sample[K any] struct {
	Key      K
	Duration time.Duration
}

// Metrics summarizes a set of timing samples: total, count, mean, standard
// deviation, and the slowest/fastest sample with its key. Grounded on
// carcara's Metrics<K> (benchmarking.rs:9-54).
type Metrics[K any] struct {
	Total             time.Duration
	Count             int
	Mean              time.Duration
	StandardDeviation time.Duration
	Max               Sample[K]
	Min               Sample[K]
}

// NewMetrics computes Metrics over data, or (nil, false) if data is empty.
func NewMetrics[K any](data []Sample[K]) (*Metrics[K], bool) {
	if len(data) == 0 {
		return nil, false
	}

	var total time.Duration
	max, min := data[0], data[0]
	for _, s := range data {
		total += s.Duration
		if s.Duration > max.Duration {
			max = s
		}
		if s.Duration < min.Duration {
			min = s
		}
	}
	count := len(data)
	mean := total / time.Duration(count)

	meanSecs := mean.Seconds()
	var varianceSum float64
	for _, s := range data {
		diff := s.Duration.Seconds() - meanSecs
		varianceSum += diff * diff
	}
	denom := count - 1
	if denom < 1 {
		denom = 1
	}
	variance := varianceSum / float64(denom)
	stddev := time.Duration(math.Sqrt(variance) * float64(time.Second))

	return &Metrics[K]{
		Total:             total,
		Count:             count,
		Mean:              mean,
		StandardDeviation: stddev,
		Max:               max,
		Min:               min,
	}, true
}

func (m *Metrics[K]) String() string {
	return fmt.Sprintf("%v ± %v", m.Mean, m.StandardDeviation)
}

// StepMeasurement is one step's rule name and the time spent checking it.
type StepMeasurement struct {
	StepID string
	Rule   string
	Time   time.Duration
}

// CheckerRunMeasurement is the timing record of one run of the checker
// over one proof file.
type CheckerRunMeasurement struct {
	ProofFileName    string
	RunIndex         int
	ParsingTime      time.Duration
	StepMeasurements []StepMeasurement
}

// Recorder implements checker.StepRecorder, labeling each recorded step
// with its sequential position since RecordStep's signature carries only
// the rule name and duration (spec.md §5 records per-step timing without
// requiring the engine to expose step ids to the sink).
type Recorder struct {
	steps   []StepMeasurement
	counter int
}

func (r *Recorder) RecordStep(rule string, d time.Duration) {
	r.counter++
	r.steps = append(r.steps, StepMeasurement{StepID: fmt.Sprintf("#%d", r.counter), Rule: rule, Time: d})
}

// Instance names one problem/proof pair to benchmark.
type Instance struct {
	ProblemFile string
	ProofFile   string
}

// RunBenchmark parses and checks every instance numRuns times each,
// returning one CheckerRunMeasurement per run. Grounded on carcara's
// run_benchmark (benchmarking.rs:77-107).
func RunBenchmark(instances []Instance, numRuns int) ([]CheckerRunMeasurement, error) {
	var runs []CheckerRunMeasurement
	for _, inst := range instances {
		for i := 0; i < numRuns; i++ {
			start := time.Now()

			problemSrc, err := os.ReadFile(inst.ProblemFile)
			if err != nil {
				return nil, err
			}
			proofSrc, err := os.ReadFile(inst.ProofFile)
			if err != nil {
				return nil, err
			}

			pool := term.NewPool()
			_, premises, env, err := parser.ParseProblem(pool, inst.ProblemFile, string(problemSrc))
			if err != nil {
				return nil, err
			}
			proofTree, err := parser.ParseProof(pool, env, premises, inst.ProofFile, string(proofSrc))
			if err != nil {
				return nil, err
			}
			parsingTime := time.Since(start)

			rec := &Recorder{}
			c := checker.New(pool, checker.Config{Statistics: rec})
			if err := c.Check(proofTree); err != nil {
				return nil, err
			}

			runs = append(runs, CheckerRunMeasurement{
				ProofFileName:    inst.ProofFile,
				RunIndex:         i,
				ParsingTime:      parsingTime,
				StepMeasurements: rec.steps,
			})
		}
	}
	return runs, nil
}

// ProofStepKey identifies one step within one proof run, for the by-rule
// breakdown.
type ProofStepKey struct {
	ProofFileName string
	StepID        string
}

// ByRule groups every step measurement across runs by rule name.
// Grounded on carcara's compile_measurements::by_rule.
func ByRule(runs []CheckerRunMeasurement) map[string]*Metrics[ProofStepKey] {
	dataByRule := make(map[string][]Sample[ProofStepKey])
	for _, run := range runs {
		for _, s := range run.StepMeasurements {
			key := ProofStepKey{ProofFileName: run.ProofFileName, StepID: s.StepID}
			dataByRule[s.Rule] = append(dataByRule[s.Rule], Sample[ProofStepKey]{Key: key, Duration: s.Time})
		}
	}
	result := make(map[string]*Metrics[ProofStepKey])
	for rule, data := range dataByRule {
		if m, ok := NewMetrics(data); ok {
			result[rule] = m
		}
	}
	return result
}

// TotalParsingTime summarizes parsing time across all runs, keyed by run
// index. Grounded on compile_measurements::total_parsing_time.
func TotalParsingTime(runs []CheckerRunMeasurement) (*Metrics[int], bool) {
	data := make([]Sample[int], len(runs))
	for i, run := range runs {
		data[i] = Sample[int]{Key: run.RunIndex, Duration: run.ParsingTime}
	}
	return NewMetrics(data)
}

// TotalCheckingTime summarizes the sum of step-checking time across all
// runs, keyed by run index. Grounded on
// compile_measurements::total_checking_time.
func TotalCheckingTime(runs []CheckerRunMeasurement) (*Metrics[int], bool) {
	data := make([]Sample[int], len(runs))
	for i, run := range runs {
		var sum time.Duration
		for _, s := range run.StepMeasurements {
			sum += s.Time
		}
		data[i] = Sample[int]{Key: run.RunIndex, Duration: sum}
	}
	return NewMetrics(data)
}

// TotalTime summarizes parsing-plus-checking time across all runs, keyed
// by run index. Grounded on compile_measurements::total_time.
func TotalTime(runs []CheckerRunMeasurement) (*Metrics[int], bool) {
	data := make([]Sample[int], len(runs))
	for i, run := range runs {
		sum := run.ParsingTime
		for _, s := range run.StepMeasurements {
			sum += s.Time
		}
		data[i] = Sample[int]{Key: run.RunIndex, Duration: sum}
	}
	return NewMetrics(data)
}
