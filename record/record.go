// Package record defines the insurance observation that every other
// package operates on.
package record

// Column names as they appear in the header row of a source file.
const (
	ColAge      = "age"
	ColSex      = "sex"
	ColBMI      = "bmi"
	ColChildren = "children"
	ColSmoker   = "smoker"
	ColRegion   = "region"
	ColCharges  = "charges"
)

// Columns lists every column a source must provide.
var Columns = []string{ColAge, ColSex, ColBMI, ColChildren, ColSmoker, ColRegion, ColCharges}

// smoker values
const (
	SmokerYes = "yes"
	SmokerNo  = "no"
)

// Record is one insurance policy observation.
// Records are built once by the loader and never mutated.
type Record struct {
	Age      int
	Sex      string
	BMI      float64
	Children int
	Smoker   string
	Region   string
	Charges  float64
}

// IsSmoker reports whether the record is in the smokers partition.
func (r Record) IsSmoker() bool {
	return r.Smoker == SmokerYes
}

// IsNonSmoker reports whether the record is in the non-smokers partition.
// A smoker value other than yes or no is in neither partition.
func (r Record) IsNonSmoker() bool {
	return r.Smoker == SmokerNo
}
