package annuity

// Timing says whether payments fall at the end or the beginning of each
// period. The numeric values match the spreadsheet convention (0 = end,
// 1 = begin) and feed directly into the balance equation.
type Timing int

const (
	// End means payments are due at the end of each period (ordinary annuity).
	End Timing = 0
	// Begin means payments are due at the start of each period (annuity due).
	Begin Timing = 1
)

// Valid reports whether t is one of the two spreadsheet timing flags.
func (t Timing) Valid() bool {
	return t == End || t == Begin
}
