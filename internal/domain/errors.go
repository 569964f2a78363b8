package domain

import "fmt"

// UnsupportedScheduleError means no usable bracket schedule exists for a
// (tax year, filing status) pair: either the pair is absent from the table or
// the table's contents violate the bracket invariants. Retrying the same
// inputs cannot succeed; the fix is a corrected schedule table.
type UnsupportedScheduleError struct {
	Year   int
	Status FilingStatus
	Reason string
}

// NewUnsupportedScheduleError builds the error for a (year, status) pair.
func NewUnsupportedScheduleError(year int, status FilingStatus, reason string) *UnsupportedScheduleError {
	return &UnsupportedScheduleError{Year: year, Status: status, Reason: reason}
}

func (e *UnsupportedScheduleError) Error() string {
	if e.Year == 0 && e.Status == "" {
		return fmt.Sprintf("tax schedule is unusable: %s", e.Reason)
	}
	return fmt.Sprintf("no usable tax schedule for year %d, status %s: %s", e.Year, e.Status, e.Reason)
}

// InvalidEntryError means an income record's numeric fields are unusable, for
// example a paystub with no wage figure at all. It is raised by input
// validation; the computation engine itself treats missing numerics as zero.
type InvalidEntryError struct {
	EntryID string
	Reason  string
}

// NewInvalidEntryError builds the error for one entry.
func NewInvalidEntryError(entryID, reason string) *InvalidEntryError {
	return &InvalidEntryError{EntryID: entryID, Reason: reason}
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("entry %s is invalid: %s", e.EntryID, e.Reason)
}
