package fallback

// keywordEntry binds a canonical category to the trigger words searched for
// in the raw input. First category whose keyword appears wins, so order is
// part of the contract.
type keywordEntry struct {
	category string
	keywords []string
}

func defaultKeywords() []keywordEntry {
	return []keywordEntry{
		{"Food", []string{
			"खाना", "जेवण", "भोजन", "ભોજન", "உணவு", "ఆహారం", "খাবার", "ਖਾਣਾ",
			"food", "lunch", "dinner", "breakfast", "khana",
		}},
		{"Transport", []string{
			"परिवहन", "वाहतूक", "યાતાયાત", "போக்குவரத்து", "రవాణా", "পরিবহন", "ਆਵਾਜਾਈ",
			"transport", "uber", "ola", "taxi", "bus", "petrol",
		}},
		{"Shopping", []string{
			"खरीदारी", "खरेदी", "ખરીદી", "கடைப்பிடித்தல்", "షాపింగ్", "কেনাকাটা", "ਖਰੀਦਾਰੀ",
			"shopping", "clothes", "shoes", "mall",
		}},
		{"Entertainment", []string{
			"मनोरंजन", "મનોરંજન", "பொழுதுபோக்கு", "వినోదం", "বিনোদন", "ਮਨੋਰੰਜਨ",
			"movie", "cinema", "concert",
		}},
		{"Health", []string{
			"स्वास्थ्य", "आरोग्य", "સ્વાસ્થ્ય", "சுகாதாரம்", "ఆరోగ్యం", "স্বাস্থ্য", "ਸਿਹਤ",
			"medicine", "doctor", "hospital", "pharmacy",
		}},
		{"Education", []string{
			"शिक्षा", "शिक्षण", "શિક્ષણ", "கல்வி", "విద్య", "শিক্ষা", "ਸਿੱਖਿਆ",
			"book", "course", "school", "college", "tuition",
		}},
		{"Bills", []string{
			"बिल", "બિલ", "பில்", "బిల్లు", "বিল", "ਬਿੱਲ",
			"bill", "electricity", "internet", "recharge",
		}},
		{"Groceries", []string{
			"किराना", "किराणा", "કિરાણા", "மளிகை", "కిరాణా", "মুদিখানা", "ਕਿਰਾਣਾ",
			"groceries", "vegetables", "milk", "supermarket", "kirana",
		}},
	}
}
