package enums

import "maps"

type BarangayClassification string

const (
	BarangayUrban BarangayClassification = "urban"
	BarangayRural BarangayClassification = "rural"
)

var barangayClassificationDescriptions = map[BarangayClassification]string{
	BarangayUrban: "Urban Barangay - Higher population density with city-like characteristics.",
	BarangayRural: "Rural Barangay - Lower population density with agricultural or countryside characteristics.",
}

func BarangayClassificationValues() []BarangayClassification {
	return []BarangayClassification{BarangayUrban, BarangayRural}
}

func BarangayClassificationDescriptions() map[BarangayClassification]string {
	return maps.Clone(barangayClassificationDescriptions)
}

func ParseBarangayClassification(raw string) (BarangayClassification, error) {
	return parse("barangay classification", raw, BarangayClassificationValues())
}

func (b BarangayClassification) Description() string {
	if d, ok := barangayClassificationDescriptions[b]; ok {
		return d
	}
	return "Unknown Classification"
}

func (b BarangayClassification) Valid() bool {
	_, ok := barangayClassificationDescriptions[b]
	return ok
}

type MunicipalClassification string

const (
	MunicipalCity         MunicipalClassification = "city"
	MunicipalMunicipality MunicipalClassification = "municipality"
)

var municipalClassificationDescriptions = map[MunicipalClassification]string{
	MunicipalCity:         "City - A highly urbanized or component city.",
	MunicipalMunicipality: "Municipality - A local government unit smaller than a city.",
}

func MunicipalClassificationValues() []MunicipalClassification {
	return []MunicipalClassification{MunicipalCity, MunicipalMunicipality}
}

func MunicipalClassificationDescriptions() map[MunicipalClassification]string {
	return maps.Clone(municipalClassificationDescriptions)
}

func ParseMunicipalClassification(raw string) (MunicipalClassification, error) {
	return parse("municipal classification", raw, MunicipalClassificationValues())
}

func (m MunicipalClassification) Description() string {
	if d, ok := municipalClassificationDescriptions[m]; ok {
		return d
	}
	return "Unknown Classification"
}

func (m MunicipalClassification) Valid() bool {
	_, ok := municipalClassificationDescriptions[m]
	return ok
}
