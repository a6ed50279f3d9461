package domain

// Record is one operation read from a record source: three raw lines.
type Record struct {
	// Index is the zero-based position of the record in its source.
	Index int

	// First is the raw first polynomial line.
	First string

	// Second is the raw second polynomial line.
	Second string

	// Operation is the raw operation keyword line.
	Operation string
}

// Operand identifies which side of a record an error refers to.
type Operand int

// Operand positions.
const (
	OperandFirst Operand = iota
	OperandSecond
)

// String returns "first" or "second".
func (o Operand) String() string {
	if o == OperandSecond {
		return "second"
	}
	return "first"
}

// Evaluation is the outcome of evaluating one record.
// Operand display strings are captured before any arithmetic runs, so they
// always show the operands as entered.
type Evaluation struct {
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Index int    `json:"index" yaml:"index"`

	// Operation is the keyword as it appeared in the record.
	Operation string `json:"operation" yaml:"operation"`
	Symbol    string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	FirstValid     bool `json:"first_valid" yaml:"first_valid"`
	SecondValid    bool `json:"second_valid" yaml:"second_valid"`
	OperationValid bool `json:"operation_valid" yaml:"operation_valid"`

	First  string `json:"first,omitempty" yaml:"first,omitempty"`
	Second string `json:"second,omitempty" yaml:"second,omitempty"`

	// Computed is true when Result holds an arithmetic result.
	Computed bool   `json:"computed" yaml:"computed"`
	Result   string `json:"result,omitempty" yaml:"result,omitempty"`

	// Canonical is the result in coefficient/exponent pair form, suitable
	// as input to another record.
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Terms     []Term `json:"terms,omitempty" yaml:"terms,omitempty"`

	// Messages are user-facing problems found in the record, in the order
	// they are reported.
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Valid reports whether both operands and the operation were accepted.
func (e *Evaluation) Valid() bool {
	return e.FirstValid && e.SecondValid && e.OperationValid
}

// RunOptions tunes a single run over a record source.
type RunOptions struct {
	// Workers is the number of records evaluated concurrently.
	// Values below 1 mean 1. Output order is unaffected.
	Workers int
}

// RunSummary reports what a run over a record source did.
type RunSummary struct {
	RunID string `json:"run_id" yaml:"run_id"`

	// Records counts complete records read.
	Records int `json:"records" yaml:"records"`

	// Computed counts records that produced a result.
	Computed int `json:"computed" yaml:"computed"`

	// Rejected counts records that produced no result.
	Rejected int `json:"rejected" yaml:"rejected"`

	// Incomplete is true when the source ended part way through a record.
	Incomplete bool `json:"incomplete" yaml:"incomplete"`
}
