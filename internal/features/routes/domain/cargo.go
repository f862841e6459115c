package domain

import "strings"

// CargoType categorizes the goods being moved; the type drives the base
// theft-risk factor of every generated variant.
type CargoType string

const (
	CargoElectronics CargoType = "electronics"
	CargoPerishable  CargoType = "perishable"
	CargoFurniture   CargoType = "furniture"
	CargoClothing    CargoType = "clothing"
	CargoMachinery   CargoType = "machinery"
)

// defaultBaseRisk is used for unrecognized cargo types.
const defaultBaseRisk = 0.5

// baseRiskFactors maps cargo types to their theft-risk base factor.
var baseRiskFactors = map[CargoType]float64{
	CargoElectronics: 0.8,
	CargoPerishable:  0.5,
	CargoFurniture:   0.3,
	CargoClothing:    0.2,
	CargoMachinery:   0.7,
}

// CargoTypes returns the recognized cargo types.
func CargoTypes() []CargoType {
	return []CargoType{CargoElectronics, CargoPerishable, CargoFurniture, CargoClothing, CargoMachinery}
}

// Valid reports whether c is a recognized cargo type.
func (c CargoType) Valid() bool {
	_, ok := baseRiskFactors[CargoType(strings.ToLower(string(c)))]
	return ok
}

// BaseRiskFactor returns the cargo's base risk factor, or the documented
// default (0.5) for unrecognized types. The same value feeds every variant
// of a request.
func BaseRiskFactor(cargo CargoType) float64 {
	if factor, ok := baseRiskFactors[CargoType(strings.ToLower(string(cargo)))]; ok {
		return factor
	}
	return defaultBaseRisk
}
