package voice

// voiceSeed is the compact source form of a catalog entry. Display names are
// derived so the persisted key format stays consistent across the roster.
type voiceSeed struct {
	provider Provider
	id       string
	name     string
	gender   string
	age      string
	tags     string
	accent   string
	lang     string
}

// defaultVoices returns the full built-in roster: the Gemini prebuilt voices,
// the ElevenLabs roster and the Google studio roster.
func defaultVoices() []VoiceRecord {
	seeds := []voiceSeed{
		// Gemini prebuilt voices. The id is the short name itself.
		{ProviderGemini, "Zephyr", "Zephyr", "female", "young", "Bright, Energetic", "", ""},
		{ProviderGemini, "Leda", "Leda", "female", "young", "Youthful, Spirited", "", ""},
		{ProviderGemini, "Laomedeia", "Laomedeia", "female", "young", "Upbeat, Lively", "", ""},
		{ProviderGemini, "Achernar", "Achernar", "female", "young", "Soft, Gentle", "", ""},
		{ProviderGemini, "Kore", "Kore", "female", "adult", "Calm, Soothing", "", ""},
		{ProviderGemini, "Aoede", "Aoede", "female", "adult", "Breezy, Clear", "", ""},
		{ProviderGemini, "Callirrhoe", "Callirrhoe", "female", "adult", "Easygoing, Warm", "", ""},
		{ProviderGemini, "Autonoe", "Autonoe", "female", "adult", "Bright, Upbeat", "", ""},
		{ProviderGemini, "Despina", "Despina", "female", "adult", "Smooth, Polished", "", ""},
		{ProviderGemini, "Erinome", "Erinome", "female", "adult", "Clear, Precise", "", ""},
		{ProviderGemini, "Sulafat", "Sulafat", "female", "adult", "Warm, Welcoming", "", ""},
		{ProviderGemini, "Gacrux", "Gacrux", "female", "mature", "Seasoned, Assured", "", ""},
		{ProviderGemini, "Puck", "Puck", "male", "young", "Playful, Mischievous", "", ""},
		{ProviderGemini, "Sadachbia", "Sadachbia", "male", "young", "Laid-back, Lively", "", ""},
		{ProviderGemini, "Charon", "Charon", "male", "adult", "Smooth, Steady", "", ""},
		{ProviderGemini, "Fenrir", "Fenrir", "male", "adult", "Resonant, Intense", "", ""},
		{ProviderGemini, "Orus", "Orus", "male", "adult", "Balanced, Reliable", "", ""},
		{ProviderGemini, "Enceladus", "Enceladus", "male", "adult", "Breathy, Quiet", "", ""},
		{ProviderGemini, "Umbriel", "Umbriel", "male", "adult", "Grounded, Narrator-like", "", ""},
		{ProviderGemini, "Algieba", "Algieba", "male", "adult", "Smooth, Agreeable", "", ""},
		{ProviderGemini, "Algenib", "Algenib", "male", "adult", "Gravelly, Textured", "", ""},
		{ProviderGemini, "Alnilam", "Alnilam", "male", "adult", "Firm, Direct", "", ""},
		{ProviderGemini, "Sadaltager", "Sadaltager", "male", "adult", "Knowledgeable, Engaging", "", ""},
		{ProviderGemini, "Iapetus", "Iapetus", "male", "mature", "Deep, Wise", "", ""},
		{ProviderGemini, "Rasalgethi", "Rasalgethi", "male", "mature", "Informative, Measured", "", ""},
		{ProviderGemini, "Zubenelgenubi", "Zubenelgenubi", "male", "mature", "Casual, Weathered", "", ""},
		{ProviderGemini, "Pulcherrima", "Pulcherrima", "neutral", "young", "Forward, Expressive", "", ""},
		{ProviderGemini, "Schedar", "Schedar", "neutral", "adult", "Even, Composed", "", ""},
		{ProviderGemini, "Vindemiatrix", "Vindemiatrix", "neutral", "mature", "Gentle, Unhurried", "", ""},
		{ProviderGemini, "Sirrah", "Sirrah", "neutral", "adult", "Airy, Curious", "", ""},

		// ElevenLabs roster. Opaque voice ids.
		{ProviderElevenLabs, "21m00Tcm4TlvDq8ikWAM", "Rachel", "female", "adult", "Calm, Narrative", "American", ""},
		{ProviderElevenLabs, "AZnzlk1XvdvUeBnXmlld", "Domi", "female", "young", "Strong, Confident", "American", ""},
		{ProviderElevenLabs, "EXAVITQu4vr4xnSDxMaL", "Bella", "female", "young", "Soft, Friendly", "American", ""},
		{ProviderElevenLabs, "ErXwobaYiN019PkySvjV", "Antoni", "male", "adult", "Well-rounded, Warm", "American", ""},
		{ProviderElevenLabs, "MF3mGyEYCl7XYWbV9V6O", "Elli", "female", "young", "Emotive, Bright", "American", ""},
		{ProviderElevenLabs, "TxGEqnHWrfWFTfGW9XjX", "Josh", "male", "young", "Deep, Casual", "American", ""},
		{ProviderElevenLabs, "VR6AewLTigWG4xSOukaG", "Arnold", "male", "mature", "Crisp, Commanding", "American", ""},
		{ProviderElevenLabs, "pNInz6obpgDQGcFmaJgB", "Adam", "male", "adult", "Deep, Versatile", "American", ""},
		{ProviderElevenLabs, "yoZ06aMxZJJ28mfd3POQ", "Sam", "male", "adult", "Raspy, Dynamic", "American", ""},
		{ProviderElevenLabs, "CwhRBWXzGAHq8TQ4Fs17", "Roger", "male", "adult", "Confident, Classy", "", ""},
		{ProviderElevenLabs, "EXsVWKza2kbsHMdAUYGp", "Sarah", "female", "adult", "Soft, Reassuring", "", ""},
		{ProviderElevenLabs, "FGY2WhTYpPnrIDTdsKH5", "Laura", "female", "young", "Upbeat, Sunny", "American", ""},
		{ProviderElevenLabs, "IKne3meq5aSn9XLyUdCD", "Charlie", "male", "young", "Natural, Chatty", "Australian", ""},
		{ProviderElevenLabs, "JBFqnCBsd6RMkjVDRZzb", "George", "male", "mature", "Warm, Resonant", "British", ""},
		{ProviderElevenLabs, "N2lVS1w4EtoT3dr4eOWO", "Callum", "male", "adult", "Intense, Gravelly", "Scottish", ""},
		{ProviderElevenLabs, "SAz9YHcvj6GT2YYXdXww", "River", "neutral", "adult", "Relaxed, Neutral", "American", ""},
		{ProviderElevenLabs, "TX3LPaxmHKxFdv7VOQHJ", "Liam", "male", "young", "Articulate, Earnest", "American", ""},
		{ProviderElevenLabs, "XB0fDUnXU5powFXDhCwa", "Charlotte", "female", "young", "Seductive, Playful", "Swedish", ""},
		{ProviderElevenLabs, "Xb7hH8MSUJpSbSDYk0k2", "Alice", "female", "adult", "Clear, Professional", "British", ""},
		{ProviderElevenLabs, "XrExE9yKIg1WjnnlVkGX", "Matilda", "female", "adult", "Friendly, Lilting", "American", ""},
		{ProviderElevenLabs, "bIHbv24MWmeRgasZH58o", "Will", "male", "young", "Friendly, Breezy", "American", ""},
		{ProviderElevenLabs, "cgSgspJ2msm6clMCkdW9", "Jessica", "female", "young", "Expressive, Vivid", "American", ""},
		{ProviderElevenLabs, "cjVigY5qzO86Huf0OWal", "Eric", "male", "adult", "Friendly, Smooth", "American", ""},
		{ProviderElevenLabs, "iP95p4xoKVk53GoZ742B", "Chris", "male", "adult", "Casual, Approachable", "American", ""},
		{ProviderElevenLabs, "nPczCjzI2devNBz1zQrb", "Brian", "male", "mature", "Deep, Narrative", "American", ""},
		{ProviderElevenLabs, "onwK4e9ZLuTAKqWW03F9", "Daniel", "male", "mature", "Authoritative, Broadcast", "British", ""},
		{ProviderElevenLabs, "pFZP5JQG7iQjIQuC4Bku", "Lily", "female", "adult", "Velvety, Warm", "British", ""},
		{ProviderElevenLabs, "pqHfZKP75CvOlQylNhV4", "Bill", "male", "mature", "Trustworthy, Steady", "American", ""},
		{ProviderElevenLabs, "bVMeCyTHy58xNoL34h3p", "Jeremy", "male", "young", "Excited, Animated", "Irish", ""},
		{ProviderElevenLabs, "zrHiDhphv9ZnVXBqCLjz", "Mimi", "female", "young", "Childlike, Whimsical", "Swedish", ""},
		{ProviderElevenLabs, "jsCqWAovK2LkecY7zXl4", "Freya", "female", "young", "Overhyped, Sparkling", "American", ""},
		{ProviderElevenLabs, "oWAxZDx7w5VEj9dCyTzz", "Grace", "female", "adult", "Gentle, Southern", "American", ""},
		{ProviderElevenLabs, "pMsXgVXv3BLzUgSXRplE", "Serena", "female", "adult", "Pleasant, Poised", "American", ""},
		{ProviderElevenLabs, "piTKgcLEGmPE4e6mEKli", "Nicole", "female", "young", "Whispery, Intimate", "American", ""},
		{ProviderElevenLabs, "flq6f7yk4E4fJM5XTYuZ", "Michael", "male", "mature", "Calm, Fatherly", "American", ""},
		{ProviderElevenLabs, "g5CIjZEefAph4nQFvHAz", "Ethan", "male", "young", "Soft, Sincere", "American", ""},
		{ProviderElevenLabs, "jBpfuIE2acCO8z3wKNLl", "Gigi", "female", "young", "Childlike, Cheery", "American", ""},
		{ProviderElevenLabs, "ThT5KcBeYPX3keUQqHPh", "Dorothy", "female", "mature", "Pleasant, Storybook", "British", ""},
		{ProviderElevenLabs, "Zlb1dXrM653N07WRdFW3", "Joseph", "male", "adult", "Grounded, Articulate", "British", ""},
		{ProviderElevenLabs, "GBv7mTt0atIp3Br8iCZE", "Thomas", "male", "adult", "Soft, Meditative", "American", ""},

		// Google studio roster. Opaque voice ids plus a required language code.
		{ProviderGoogle, "en-GB-Neural2-A", "Imogen", "female", "adult", "Polished, Articulate", "British", "en-GB"},
		{ProviderGoogle, "en-GB-Neural2-B", "Rupert", "male", "adult", "Refined, Dry", "British", "en-GB"},
		{ProviderGoogle, "en-GB-Neural2-C", "Beatrix", "female", "mature", "Stately, Precise", "British", "en-GB"},
		{ProviderGoogle, "en-GB-Neural2-D", "Nigel", "male", "mature", "Gravelly, Wry", "British", "en-GB"},
		{ProviderGoogle, "en-GB-Wavenet-F", "Tamsin", "female", "young", "Light, Quick", "British", "en-GB"},
		{ProviderGoogle, "en-GB-Studio-B", "Alistair", "male", "adult", "Smooth, Urbane", "British", "en-GB"},
		{ProviderGoogle, "en-IN-Neural2-A", "Priya", "female", "adult", "Melodic, Warm", "Indian", "en-IN"},
		{ProviderGoogle, "en-IN-Neural2-B", "Arjun", "male", "adult", "Energetic, Clear", "Indian", "en-IN"},
		{ProviderGoogle, "en-IN-Wavenet-D", "Meera", "female", "young", "Bright, Quick", "Indian", "en-IN"},
		{ProviderGoogle, "en-IN-Wavenet-C", "Rohan", "male", "young", "Lively, Friendly", "Indian", "en-IN"},
		{ProviderGoogle, "en-AU-Neural2-A", "Sienna", "female", "young", "Sunny, Easygoing", "Australian", "en-AU"},
		{ProviderGoogle, "en-AU-Neural2-B", "Lachlan", "male", "adult", "Relaxed, Dry", "Australian", "en-AU"},
		{ProviderGoogle, "en-AU-Neural2-C", "Harper", "female", "adult", "Direct, Capable", "Australian", "en-AU"},
		{ProviderGoogle, "en-AU-Neural2-D", "Banjo", "male", "mature", "Weathered, Folksy", "Australian", "en-AU"},
		{ProviderGoogle, "en-US-Studio-O", "Evelyn", "female", "adult", "Studio, Expressive", "", "en-US"},
		{ProviderGoogle, "en-US-Studio-Q", "Harold", "male", "mature", "Studio, Booming", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-C", "Clara", "female", "young", "Crisp, Optimistic", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-D", "Edmund", "male", "adult", "Sturdy, Plainspoken", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-E", "Maeve", "female", "adult", "Lyrical, Soft", "Irish", "en-US"},
		{ProviderGoogle, "en-US-Neural2-J", "Declan", "male", "young", "Quick, Spirited", "Irish", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-A", "Ingrid", "female", "mature", "Cool, Deliberate", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-B", "Soren", "male", "adult", "Low, Thoughtful", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-C", "Astrid", "female", "young", "Airy, Inquisitive", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-D", "Magnus", "male", "mature", "Huge, Theatrical", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-E", "Paloma", "female", "adult", "Husky, Candid", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-I", "Mateo", "male", "young", "Smooth, Upbeat", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-F", "Lucia", "female", "young", "Vibrant, Musical", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-J", "Rafael", "male", "adult", "Rich, Unruffled", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-F", "Yuki", "female", "young", "Delicate, Precise", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-I", "Haruto", "male", "adult", "Even, Courteous", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-G", "Amara", "female", "adult", "Velvet, Unhurried", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-H", "Kofi", "male", "adult", "Sonorous, Generous", "", "en-US"},
		{ProviderGoogle, "en-US-Neural2-A", "Zara", "female", "young", "Sharp, Modern", "", "en-US"},
		{ProviderGoogle, "en-US-Studio-M", "Idris", "male", "adult", "Silken, Magnetic", "", "en-US"},
		{ProviderGoogle, "en-US-Casual-K", "Wren", "neutral", "young", "Casual, Androgynous", "", "en-US"},
		{ProviderGoogle, "en-US-Studio-N", "Sage", "neutral", "adult", "Mellow, Balanced", "", "en-US"},
		{ProviderGoogle, "en-US-Wavenet-H", "Onyx", "neutral", "mature", "Shadowed, Calm", "", "en-US"},
	}

	records := make([]VoiceRecord, len(seeds))
	for i, s := range seeds {
		records[i] = VoiceRecord{
			ID:          s.id,
			ShortName:   s.name,
			DisplayName: displayName(s.name, s.gender, s.age, s.tags, s.accent),
			Provider:    s.provider,
			Gender:      s.gender,
			AgeBand:     s.age,
			Accent:      s.accent,
			Language:    s.lang,
		}
	}
	return records
}
