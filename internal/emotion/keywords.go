package emotion

// Keyword tables per language. A language with no table falls back to the
// English one. Matching is substring-based, so multi-word entries like
// "burned out" work without tokenisation.
var keywords = map[Language]map[Emotion][]string{
	English: {
		Sad:      {"sad", "depressed", "down", "unhappy", "crying", "tears", "miserable", "lonely", "hopeless", "hurt", "pain", "heartbroken"},
		Anxious:  {"anxious", "worried", "stress", "nervous", "panic", "fear", "scared", "overwhelmed", "terrified", "afraid"},
		Angry:    {"angry", "mad", "furious", "frustrated", "annoyed", "irritated", "rage", "hate", "upset"},
		Happy:    {"happy", "joy", "excited", "great", "wonderful", "amazing", "good", "awesome", "fantastic", "love", "brilliant"},
		Tired:    {"tired", "exhausted", "drained", "weary", "fatigued", "sleepy", "burned out"},
		Confused: {"confused", "lost", "unsure", "don't know", "uncertain", "puzzled"},
		Grateful: {"grateful", "thankful", "blessed", "appreciate", "lucky", "fortunate"},
		Calm:     {"calm", "peaceful", "relaxed", "serene", "content", "tranquil"},
	},
	Spanish: {
		Sad:      {"triste", "tristeza", "llorar", "deprimido", "desdichado", "solo", "desesperado", "herido", "dolor", "corazón roto"},
		Anxious:  {"ansioso", "preocupado", "estrés", "nervioso", "pánico", "miedo", "asustado", "abrumado", "aterrorizado", "temor"},
		Angry:    {"enojado", "enfadado", "furioso", "frustrado", "molesto", "irritado", "rabia", "odio", "alterado"},
		Happy:    {"feliz", "alegría", "emocionado", "genial", "maravilloso", "asombroso", "bueno", "fantástico", "amor", "brillante"},
		Tired:    {"cansado", "exhausto", "agotado", "cansino", "fatigado", "somnoliento", "quemado"},
		Confused: {"confundido", "perdido", "inseguro", "no sé", "incierto", "desconcertado"},
		Grateful: {"agradecido", "agradecimiento", "bendecido", "aprecio", "afortunado"},
		Calm:     {"calmado", "tranquilo", "relajado", "sereno", "contento", "plácido"},
	},
	Hindi: {
		Sad:      {"दुख", "उदास", "दुखी", "रोना", "आंसू", "निराश", "अकेला", "निराशावादी", "चोट", "दर्द", "दिल टूटा"},
		Anxious:  {"चिंतित", "चिंता", "तनाव", "नर्वस", "पैनिक", "डर", "भयभीत", "अधिक भार", "भयानक", "भय"},
		Angry:    {"गुस्सा", "गुस्से", "क्रोध", "नाराज", "चिढ़", "क्रोधित", "घृणा", "उत्तेजित"},
		Happy:    {"खुश", "खुशी", "उत्साहित", "अद्भुत", "शानदार", "असाधारण", "अच्छा", "फैंटास्टिक", "प्यार", "उज्ज्वल"},
		Tired:    {"थका", "थकान", "निकास", "थकित", "नींद", "जला हुआ"},
		Confused: {"भ्रमित", "खोया", "अनिश्चित", "नहीं जानता", "हैरान"},
		Grateful: {"आभारी", "कृतज्ञ", "आशीर्वादित", "सराहना", "भाग्यशाली", "सौभाग्यशाली"},
		Calm:     {"शांत", "शांतिपूर्ण", "आरामदायक", "निश्चल", "संतुष्ट"},
	},
}
