package constants

// Query bounds accepted at the API boundary.
const (
	MinMonthlySalary = 1
	MaxMonthlySalary = 10_000_000

	MinAge = 1
	MaxAge = 120
)

// CareInsuranceMinAge is the age from which nursing-care premiums are owed.
const CareInsuranceMinAge = 40

// MoneyScale is the number of fractional digits every premium share is rounded to.
const MoneyScale = 2
