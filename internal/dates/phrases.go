package dates

// phrase binds a relative-date expression to a day offset from today.
// Negative offsets point into the past; expense sentences overwhelmingly
// refer to money already spent, so ambiguous words resolve to their past
// reading (Hindi "कल" means both yesterday and tomorrow — here it is
// yesterday).
type phrase struct {
	text       string
	offsetDays int
}

// relativePhrases is the single ordered table of supported relative-date
// expressions. Matching is first-hit substring search on the lowercased
// token, so more specific phrases must precede their substrings
// ("day before yesterday" before "yesterday", "परसों" before any phrase
// containing "परसों" would be shadowed by, and so on).
func relativePhrases() []phrase {
	return []phrase{
		// English.
		{"day before yesterday", -2},
		{"yesterday", -1},
		{"today", 0},
		{"tomorrow", +1},
		{"last week", -7},
		{"this week", 0},
		{"last month", -30},

		// Hindi.
		{"परसों", -2},
		{"कल", -1},
		{"आज", 0},
		{"पिछले हफ्ते", -7},
		{"इस हफ्ते", 0},

		// Marathi.
		{"परवा", -2},
		{"काल", -1},
		{"मागल्या आठवड्यात", -7},
		{"या आठवड्यात", 0},

		// Gujarati.
		{"પરવા", -2},
		{"ગઈકાલે", -1},
		{"કાલ", -1},
		{"આજ", 0},
		{"ગયા અઠવાડિયામાં", -7},
		{"આ અઠવાડિયામાં", 0},

		// Tamil.
		{"முந்தைய நாள்", -2},
		{"நேற்று", -1},
		{"இன்று", 0},
		{"கடந்த வாரத்தில்", -7},
		{"இந்த வாரத்தில்", 0},

		// Telugu.
		{"మొన్న", -2},
		{"నిన్న", -1},
		{"నేడు", 0},
		{"గత వారంలో", -7},
		{"ఈ వారంలో", 0},

		// Bengali.
		{"পরশু", -2},
		{"গতকাল", -1},
		{"কাল", -1},
		{"আজ", 0},
		{"গত সপ্তাহে", -7},
		{"এই সপ্তাহে", 0},

		// Punjabi.
		{"ਪਰਸੋਂ", -2},
		{"ਕੱਲ੍ਹ", -1},
		{"ਅੱਜ", 0},
		{"ਪਿਛਲੇ ਹਫ਼ਤੇ", -7},
		{"ਇਸ ਹਫ਼ਤੇ", 0},
	}
}
