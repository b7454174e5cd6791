package match

// synonymEntry binds a canonical category name to the words and phrases that
// should resolve to it. Lists mix native-script terms, romanized slang and
// common English merchant words; all entries are stored lowercased.
type synonymEntry struct {
	canonical string
	synonyms  []string
}

// defaultSynonyms is the fixed table the matcher consults after exact
// matching fails. Order matters: the first canonical entry whose list hits
// wins, so broader categories come later.
func defaultSynonyms() []synonymEntry {
	return []synonymEntry{
		{"Food", []string{
			"खाना", "जेवण", "भोजन", "ભોજન", "உணவு", "ఆహారం", "খাবার", "ਖਾਣਾ",
			"khana", "jevan", "bhojan",
			"lunch", "dinner", "breakfast", "meal", "snack", "restaurant", "cafe", "hotel",
		}},
		{"Transport", []string{
			"परिवहन", "वाहतूक", "યાતાયાત", "போக்குவரத்து", "రవాణా", "পরিবহন", "ਆਵਾਜਾਈ",
			"parivahan", "vahatuk",
			"uber", "ola", "taxi", "auto", "rickshaw", "bus", "metro", "train", "fuel", "petrol", "diesel",
		}},
		{"Shopping", []string{
			"खरीदारी", "खरेदी", "ખરીદી", "கடைப்பிடித்தல்", "షాపింగ్", "কেনাকাটা", "ਖਰੀਦਾਰੀ",
			"kharidari", "kharedi",
			"clothes", "shirt", "pants", "dress", "shoes", "mall", "store",
		}},
		{"Entertainment", []string{
			"मनोरंजन", "મનોરંજન", "பொழுதுபோக்கு", "వినోదం", "বিনোদন", "ਮਨੋਰੰਜਨ",
			"manoranjan",
			"movie", "cinema", "theatre", "concert", "show", "game",
		}},
		{"Health", []string{
			"स्वास्थ्य", "आरोग्य", "સ્વાસ્થ્ય", "சுகாதாரம்", "ఆరోగ్యం", "স্বাস্থ্য", "ਸਿਹਤ",
			"swasthya", "arogya", "dawai",
			"medicine", "doctor", "hospital", "pharmacy", "checkup",
		}},
		{"Education", []string{
			"शिक्षा", "शिक्षण", "શિક્ષણ", "கல்வி", "విద్య", "শিক্ষা", "ਸਿੱਖਿਆ",
			"shiksha", "shikshan",
			"book", "course", "training", "school", "college", "university", "tuition",
		}},
		{"Bills", []string{
			"बिल", "બિલ", "பில்", "బిల్లు", "বিল", "ਬਿੱਲ",
			"electricity", "water", "gas", "internet", "phone", "recharge", "utility",
		}},
		{"Groceries", []string{
			"किराना", "किराणा", "કિરાણા", "மளிகை", "కిరాణా", "মুদিখানা", "ਕਿਰਾਣਾ",
			"kirana", "sabzi",
			"vegetables", "fruits", "milk", "bread", "supermarket",
		}},
	}
}
