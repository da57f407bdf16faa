package enums

import "maps"

type SexualCategory string

const (
	SexMale   SexualCategory = "male"
	SexFemale SexualCategory = "female"
)

var sexualCategoryDescriptions = map[SexualCategory]string{
	SexMale:   "Male",
	SexFemale: "Female",
}

func SexualCategoryValues() []SexualCategory {
	return []SexualCategory{SexMale, SexFemale}
}

func SexualCategoryDescriptions() map[SexualCategory]string {
	return maps.Clone(sexualCategoryDescriptions)
}

func ParseSexualCategory(raw string) (SexualCategory, error) {
	return parse("sexual category", raw, SexualCategoryValues())
}

func (s SexualCategory) Description() string {
	if d, ok := sexualCategoryDescriptions[s]; ok {
		return d
	}
	return "Unknown"
}

func (s SexualCategory) Valid() bool {
	_, ok := sexualCategoryDescriptions[s]
	return ok
}
