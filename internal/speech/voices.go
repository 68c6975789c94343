package speech

// providerVoices maps internal voice ids to the synthesis provider's voice
// ids. Unmapped ids fall back to defaultProviderVoice; the fallback is
// reported to callers rather than applied silently.
var providerVoices = map[string]string{
	"male1":   "pNInz6obpgDQGcFmaJgB",
	"female1": "EXAVITQu4vr4xnSDxMaL",
	"male2":   "TxGEqnHWrfWFTfGW9XjX",
	"female2": "ThT5KcBeYPX3keUQqHPh",
}

const defaultProviderVoice = "pNInz6obpgDQGcFmaJgB"

// MapVoice resolves an internal voice id to the provider's voice id. The
// second return value reports whether the default voice was substituted for
// an unknown id.
func MapVoice(voiceID string) (string, bool) {
	if pv, ok := providerVoices[voiceID]; ok {
		return pv, false
	}
	return defaultProviderVoice, true
}
