package domain

// Localized is a bilingual text value. The bson keys double as the text
// index paths (title.en, content.ar and so on).
type Localized struct {
	En string `bson:"en" json:"en"`
	Ar string `bson:"ar" json:"ar"`
}

// Empty reports whether both languages are blank.
func (l Localized) Empty() bool {
	return l.En == "" && l.Ar == ""
}
