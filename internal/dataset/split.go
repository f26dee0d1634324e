package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/crimson-sun/stanza/internal/model"
)

// ErrInsufficientClassSamples is returned by Split when stratification is
// requested and some class has fewer than two members, so it cannot appear
// in both halves.
var ErrInsufficientClassSamples = errors.New("dataset: class has too few samples to stratify")

// SplitOptions controls the train/test partition. The zero value is not
// usable; start from DefaultSplitOptions.
type SplitOptions struct {
	TestFraction float64 // in (0,1)
	Seed         int64
	Stratify     bool
}

// DefaultSplitOptions matches the options used at training time. Evaluation
// must use the same values to reconstruct the identical test partition.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{TestFraction: 0.2, Seed: 42, Stratify: true}
}

// Split partitions ds into disjoint train and test subsequences whose union
// is the input. With Stratify set, each class of the task's label column keeps
// its full-dataset proportion in both halves to within one rounding unit.
// Deterministic for a fixed seed: same input, same output, every call.
func Split(ds Dataset, task model.Task, opts SplitOptions) (train, test Dataset, err error) {
	if !task.Known() {
		return nil, nil, fmt.Errorf("dataset: unknown label column %q", task)
	}
	if opts.TestFraction <= 0 || opts.TestFraction >= 1 {
		return nil, nil, fmt.Errorf("dataset: test fraction %v outside (0,1)", opts.TestFraction)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var testIdx []int
	if opts.Stratify {
		testIdx, err = stratifiedTestIndices(ds, task, opts.TestFraction, rng)
		if err != nil {
			return nil, nil, err
		}
	} else {
		perm := rng.Perm(len(ds))
		n := int(math.Round(opts.TestFraction * float64(len(ds))))
		testIdx = perm[:n]
	}

	inTest := make(map[int]bool, len(testIdx))
	for _, i := range testIdx {
		inTest[i] = true
	}
	for i := range ds {
		if inTest[i] {
			test = append(test, ds[i])
		} else {
			train = append(train, ds[i])
		}
	}
	return train, test, nil
}

// stratifiedTestIndices picks per-class test rows. Classes are visited in
// sorted order so the rng stream, and therefore the partition, is stable.
func stratifiedTestIndices(ds Dataset, task model.Task, fraction float64, rng *rand.Rand) ([]int, error) {
	byClass := make(map[string][]int)
	for i, r := range ds {
		label := task.Label(r)
		byClass[label] = append(byClass[label], i)
	}

	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	var testIdx []int
	for _, c := range classes {
		members := byClass[c]
		if len(members) < 2 {
			return nil, fmt.Errorf("%w: class %q has %d sample(s)", ErrInsufficientClassSamples, c, len(members))
		}
		n := int(math.Round(fraction * float64(len(members))))
		if n < 1 {
			n = 1
		}
		if n >= len(members) {
			n = len(members) - 1
		}
		shuffled := append([]int(nil), members...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		testIdx = append(testIdx, shuffled[:n]...)
	}
	return testIdx, nil
}
