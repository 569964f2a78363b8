package schedule

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxcast/internal/domain"
)

// Provider supplies the standard deduction and bracket table for a
// (tax year, filing status) pair. Both lookups fail with
// *domain.UnsupportedScheduleError when the pair is not on file.
type Provider interface {
	Deduction(year int, status domain.FilingStatus) (decimal.Decimal, error)
	Brackets(year int, status domain.FilingStatus) ([]domain.BracketBand, error)
}

type scheduleKey struct {
	year   int
	status domain.FilingStatus
}

// StaticProvider serves schedules from an in-memory table fixed at
// construction. Lookups never mutate it, so one provider may be shared
// across concurrent calculations.
type StaticProvider struct {
	schedules map[scheduleKey]domain.TaxSchedule
}

// NewStaticProvider returns a provider loaded with the built-in tables.
func NewStaticProvider() *StaticProvider {
	p := &StaticProvider{schedules: make(map[scheduleKey]domain.TaxSchedule)}
	for _, s := range BuiltinSchedules() {
		p.schedules[scheduleKey{s.Year, s.Status}] = s
	}
	return p
}

// NewProviderFromSchedules validates and indexes caller-supplied schedules.
// A duplicate (year, status) pair or a schedule violating the bracket
// invariants fails the whole set.
func NewProviderFromSchedules(schedules []domain.TaxSchedule) (*StaticProvider, error) {
	p := &StaticProvider{schedules: make(map[scheduleKey]domain.TaxSchedule, len(schedules))}
	for _, s := range schedules {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		k := scheduleKey{s.Year, s.Status}
		if _, exists := p.schedules[k]; exists {
			return nil, fmt.Errorf("duplicate schedule for year %d, status %s", s.Year, s.Status)
		}
		p.schedules[k] = s
	}
	return p, nil
}

// Schedule returns the full schedule for a (year, status) pair.
func (p *StaticProvider) Schedule(year int, status domain.FilingStatus) (domain.TaxSchedule, error) {
	s, ok := p.schedules[scheduleKey{year, status}]
	if !ok {
		return domain.TaxSchedule{}, domain.NewUnsupportedScheduleError(year, status, "no table on file")
	}
	return s, nil
}

// Deduction returns the standard deduction for a (year, status) pair.
func (p *StaticProvider) Deduction(year int, status domain.FilingStatus) (decimal.Decimal, error) {
	s, err := p.Schedule(year, status)
	if err != nil {
		return decimal.Zero, err
	}
	return s.StandardDeduction, nil
}

// Brackets returns the bracket bands for a (year, status) pair in ascending
// order. Callers must treat the returned slice as read-only.
func (p *StaticProvider) Brackets(year int, status domain.FilingStatus) ([]domain.BracketBand, error) {
	s, err := p.Schedule(year, status)
	if err != nil {
		return nil, err
	}
	return s.Bands, nil
}

// Years lists every tax year the provider has at least one schedule for,
// ascending.
func (p *StaticProvider) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for k := range p.schedules {
		if !seen[k.year] {
			seen[k.year] = true
			years = append(years, k.year)
		}
	}
	sort.Ints(years)
	return years
}

// schedulesFile is the on-disk shape of a user-supplied schedules file.
type schedulesFile struct {
	Schedules []domain.TaxSchedule `yaml:"schedules"`
}

// LoadSchedules reads a YAML schedules file and returns its tables,
// validated. The file carries a top-level "schedules" list; each element
// has year, status, standard_deduction, and brackets.
func LoadSchedules(filename string) ([]domain.TaxSchedule, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedules file %s: %w", filename, err)
	}

	var file schedulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schedules YAML: %w", err)
	}
	if len(file.Schedules) == 0 {
		return nil, fmt.Errorf("schedules file %s contains no schedules", filename)
	}

	for _, s := range file.Schedules {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("schedules file %s: %w", filename, err)
		}
	}
	return file.Schedules, nil
}

// LoadProvider reads a schedules file and indexes it into a provider.
func LoadProvider(filename string) (*StaticProvider, error) {
	schedules, err := LoadSchedules(filename)
	if err != nil {
		return nil, err
	}
	return NewProviderFromSchedules(schedules)
}
