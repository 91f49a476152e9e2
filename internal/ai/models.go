package ai

var AllowedModels = []string{
	"gemini/gemini-2.5-flash",
}

func IsAllowedModel(model string) bool {
	for _, candidate := range AllowedModels {
		if model == candidate {
			return true
		}
	}
	return false
}
