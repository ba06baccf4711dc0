package ductnoise

import "fmt"

// InvalidInputError reports unusable path input. For an empty element
// list, CalculatePath returns it on PathResult.Error with Valid=false and
// produces no PathElementResults. The per-element calculators also return
// it when an element's detail struct is missing; the engine then wraps it
// in a CalculatorError on that element and continues. A duct with
// non-positive length or no geometry is only a ValidatePath warning.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid path input: %s", e.Reason)
}

// OutOfRangeWarning reports that a calculator's input fell outside its
// tabulated coverage and was saturated to the nearest endpoint instead of
// extrapolated.
type OutOfRangeWarning struct {
	Element string
	Detail  string
}

func (w *OutOfRangeWarning) Error() string {
	return fmt.Sprintf("%s: input out of tabulated range, saturated: %s", w.Element, w.Detail)
}

// NumericGuardWarning reports that a per-band formula produced NaN or
// infinity (typically log of a non-positive quantity) and the offending
// band was zeroed.
type NumericGuardWarning struct {
	Element string
	Band    int
}

func (w *NumericGuardWarning) Error() string {
	return fmt.Sprintf("%s: band %d produced a non-finite value, zeroed", w.Element, Frequencies[w.Band])
}

// CalculatorError wraps an unexpected failure inside a single element's
// calculator. The engine records it on that element's PathElementResult
// and continues traversal with zeroed attenuation/generated spectra for
// that element.
type CalculatorError struct {
	Element string
	Cause   error
}

func (e *CalculatorError) Error() string {
	return fmt.Sprintf("%s: calculator error: %v", e.Element, e.Cause)
}

func (e *CalculatorError) Unwrap() error {
	return e.Cause
}

// AggregationError reports that CombineReceiver was given zero valid
// path spectra. It never aborts; the ReceiverResult carries a zero
// spectrum and this as a warning.
type AggregationError struct {
	Reason string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation error: %s", e.Reason)
}
